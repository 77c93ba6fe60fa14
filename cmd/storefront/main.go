package main

import (
	"context"

	catalogapp "github.com/boutique/storefront/internal/application/catalog"
	contentapp "github.com/boutique/storefront/internal/application/content"
	identityapp "github.com/boutique/storefront/internal/application/identity"
	navigationapp "github.com/boutique/storefront/internal/application/navigation"
	tradeapp "github.com/boutique/storefront/internal/application/trade"
	"github.com/boutique/storefront/internal/domain/identity"
	"github.com/boutique/storefront/internal/infrastructure/auth"
	"github.com/boutique/storefront/internal/infrastructure/config"
	"github.com/boutique/storefront/internal/infrastructure/logger"
	"github.com/boutique/storefront/internal/infrastructure/notification"
	"github.com/boutique/storefront/internal/infrastructure/persistence"
	"github.com/boutique/storefront/internal/infrastructure/session"
	"github.com/boutique/storefront/internal/infrastructure/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("database", cfg.Database.Path),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database ready")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	siteRepo := persistence.NewGormSiteRepository(db.DB)
	pageRepo := persistence.NewGormCustomPageRepository(db.DB)
	socialRepo := persistence.NewGormSocialPostRepository(db.DB)

	// Seed demo data
	if cfg.Seed.Enabled {
		seeder := persistence.NewSeeder(productRepo, reviewRepo, pageRepo, socialRepo, siteRepo, log)
		if err := seeder.Run(context.Background()); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	// Initialize the password verifier and admin session
	verifier, err := auth.NewVerifier(cfg.Admin.PasswordScheme)
	if err != nil {
		log.Fatal("Failed to configure password verifier", zap.Error(err))
	}
	adminSession, err := identity.NewAdminSession(cfg.Admin.InitialPassword, verifier)
	if err != nil {
		log.Fatal("Failed to initialize admin session", zap.Error(err))
	}

	// Initialize application services
	flagStore := session.NewFlagStore()
	notifier := notification.NewLogNotifier(log)
	encoder := storage.NewDataURLEncoder(log)

	productService := catalogapp.NewProductService(productRepo, encoder, log)
	reviewService := catalogapp.NewReviewService(reviewRepo, log)
	cartService := tradeapp.NewCartService(productRepo, log)
	checkoutService := tradeapp.NewCheckoutService(orderRepo, cartService.Cart(), notifier, log)
	authService := identityapp.NewAuthService(accountRepo, verifier, log)
	adminService := identityapp.NewAdminService(adminSession, log)
	siteService := contentapp.NewSiteService(siteRepo, flagStore, log)
	editorService := contentapp.NewEditorService(siteRepo, encoder, log)
	pageService := contentapp.NewPageService(pageRepo, log)
	socialService := contentapp.NewSocialService(socialRepo, log)
	controller := navigationapp.NewController(adminSession, log)

	app := &App{
		Config:   cfg,
		Logger:   log,
		Products: productService,
		Reviews:  reviewService,
		Cart:     cartService,
		Checkout: checkoutService,
		Auth:     authService,
		Admin:    adminService,
		Site:     siteService,
		Editor:   editorService,
		Pages:    pageService,
		Social:   socialService,
		Nav:      controller,
	}

	if err := app.Report(context.Background()); err != nil {
		log.Fatal("Startup check failed", zap.Error(err))
	}
	log.Info("Storefront ready", zap.String("page", controller.Current().Name()))
}
