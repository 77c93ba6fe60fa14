package main

import (
	"context"

	catalogapp "github.com/boutique/storefront/internal/application/catalog"
	contentapp "github.com/boutique/storefront/internal/application/content"
	identityapp "github.com/boutique/storefront/internal/application/identity"
	navigationapp "github.com/boutique/storefront/internal/application/navigation"
	tradeapp "github.com/boutique/storefront/internal/application/trade"
	"github.com/boutique/storefront/internal/infrastructure/config"
	"go.uber.org/zap"
)

// App bundles the wired application services. A UI layer embeds this and
// drives it; the binary itself only wires and reports.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Products *catalogapp.ProductService
	Reviews  *catalogapp.ReviewService
	Cart     *tradeapp.CartService
	Checkout *tradeapp.CheckoutService
	Auth     *identityapp.AuthService
	Admin    *identityapp.AdminService
	Site     *contentapp.SiteService
	Editor   *contentapp.EditorService
	Pages    *contentapp.PageService
	Social   *contentapp.SocialService
	Nav      *navigationapp.Controller
}

// Report logs a startup summary of the seeded state
func (a *App) Report(ctx context.Context) error {
	products, err := a.Products.Count(ctx)
	if err != nil {
		return err
	}
	pages, err := a.Pages.List(ctx)
	if err != nil {
		return err
	}
	posts, err := a.Social.Feed(ctx)
	if err != nil {
		return err
	}
	site, err := a.Site.Content(ctx)
	if err != nil {
		return err
	}

	a.Logger.Info("storefront state",
		zap.Int64("products", products),
		zap.Int("custom_pages", len(pages)),
		zap.Int("social_posts", len(posts)),
		zap.String("hero_slogan", site.HeroSlogan),
	)
	return nil
}
