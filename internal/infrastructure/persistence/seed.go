package persistence

import (
	"context"
	"fmt"

	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/boutique/storefront/internal/domain/content"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Seeder loads the demo storefront data into an empty database. Seeding is
// idempotent per process: a non-empty catalog is left alone.
type Seeder struct {
	products catalog.ProductRepository
	reviews  catalog.ReviewRepository
	pages    content.CustomPageRepository
	posts    content.SocialPostRepository
	site     content.SiteRepository
	logger   *zap.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(
	products catalog.ProductRepository,
	reviews catalog.ReviewRepository,
	pages content.CustomPageRepository,
	posts content.SocialPostRepository,
	site content.SiteRepository,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		products: products,
		reviews:  reviews,
		pages:    pages,
		posts:    posts,
		site:     site,
		logger:   logger,
	}
}

type seedProduct struct {
	name        string
	category    catalog.Category
	price       string
	salePrice   string
	description string
	material    string
	dimensions  string
	care        string
	imageURL    string
	images      []string
	rating      float64
	reviewCount int
	isNew       bool
	isBest      bool
}

// Run seeds all collections and the site documents
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug("seed skipped, catalog not empty")
		return nil
	}

	productIDs, err := s.seedProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := s.seedReviews(ctx, productIDs); err != nil {
		return fmt.Errorf("failed to seed reviews: %w", err)
	}
	if err := s.seedPages(ctx); err != nil {
		return fmt.Errorf("failed to seed pages: %w", err)
	}
	if err := s.seedSocialPosts(ctx); err != nil {
		return fmt.Errorf("failed to seed social posts: %w", err)
	}
	if err := s.site.Replace(ctx, defaultSiteContent(), defaultSiteSettings()); err != nil {
		return fmt.Errorf("failed to seed site documents: %w", err)
	}

	s.logger.Info("demo data seeded", zap.Int("products", len(productIDs)))
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) (map[string]*catalog.Product, error) {
	seeds := []seedProduct{
		{
			name: "Collier Élégance Dorée", category: catalog.CategoryJewelry, price: "69.90",
			description: "Un collier délicat plaqué or 18k, parfait pour toutes les occasions.",
			material:    "Plaqué or 18k, Zirconium", dimensions: "Chaîne 45cm + 5cm extension",
			care:     "Éviter le contact avec l'eau et le parfum.",
			imageURL: "https://images.unsplash.com/photo-1611652033959-8a356399335d?w=500&q=80",
			images: []string{
				"https://images.unsplash.com/photo-1611652033959-8a356399335d?w=800&q=80",
				"https://images.unsplash.com/photo-1599643477877-539eb8a52e30?w=800&q=80",
				"https://images.unsplash.com/photo-1611652033838-dbf52153562a?w=800&q=80",
			},
			rating: 4.8, reviewCount: 112, isNew: true, isBest: true,
		},
		{
			name: "Coffret Cadeau \"Sérénité\"", category: catalog.CategoryBoxes, price: "129.00", salePrice: "99.00",
			description: "Le coffret parfait pour un moment de détente et de bien-être.",
			material:    "Contient une bougie, un bracelet et un masque en soie.", dimensions: "Boîte 25x25x10cm",
			care:     "Conserver dans un endroit frais et sec.",
			imageURL: "https://images.unsplash.com/photo-1572196289094-7c34015b6b8b?w=500&q=80",
			images:   []string{"https://images.unsplash.com/photo-1572196289094-7c34015b6b8b?w=800&q=80"},
			rating:   5.0, reviewCount: 98, isBest: true,
		},
		{
			name: "Foulard en Soie \"Rose Poudré\"", category: catalog.CategoryAccessories, price: "45.50",
			description: "Un foulard en soie pure, doux et polyvalent pour sublimer vos tenues.",
			material:    "100% Soie de mûrier", dimensions: "90x90cm",
			care:     "Lavage à la main recommandé.",
			imageURL: "https://images.unsplash.com/photo-1529374255404-311a2a4f1fd9?w=500&q=80",
			images:   []string{"https://images.unsplash.com/photo-1529374255404-311a2a4f1fd9?w=800&q=80"},
			rating:   4.7, reviewCount: 76, isNew: true,
		},
		{
			name: "Bracelet \"Monogramme\"", category: catalog.CategoryPersonalized, price: "85.00",
			description: "Faites graver vos initiales sur ce bracelet jonc élégant.",
			material:    "Acier inoxydable plaqué or", dimensions: "Ajustable",
			care:     "Nettoyer avec un chiffon doux.",
			imageURL: "https://images.unsplash.com/photo-1620921282914-2327d7f73967?w=500&q=80",
			images:   []string{"https://images.unsplash.com/photo-1620921282914-2327d7f73967?w=800&q=80"},
			rating:   4.9, reviewCount: 150, isBest: true,
		},
		{
			name: "Boucles d'oreilles \"Perle de Lune\"", category: catalog.CategoryJewelry, price: "55.00", salePrice: "44.90",
			description: "Des créoles délicates ornées de perles d'eau douce.",
			material:    "Plaqué or 18k, perles d'eau douce", dimensions: "Diamètre 2cm",
			care:     "Éviter le contact avec les produits chimiques.",
			imageURL: "https://images.unsplash.com/photo-1615211603304-555e7b233a0e?w=500&q=80",
			images:   []string{"https://images.unsplash.com/photo-1615211603304-555e7b233a0e?w=800&q=80"},
			rating:   4.8, reviewCount: 89,
		},
		{
			name: "Barrette Cheveux \"Éclat Fleuri\"", category: catalog.CategoryAccessories, price: "29.90",
			description: "Une barrette ornée de fleurs en nacre pour une coiffure romantique.",
			material:    "Nacre, Laiton", dimensions: "8cm de longueur",
			care:     "Manipuler avec soin.",
			imageURL: "https://images.unsplash.com/photo-1589154289479-78b1965a3b2b?w=500&q=80",
			images:   []string{"https://images.unsplash.com/photo-1589154289479-78b1965a3b2b?w=800&q=80"},
			rating:   4.6, reviewCount: 54, isNew: true,
		},
	}

	byName := make(map[string]*catalog.Product, len(seeds))
	for _, seed := range seeds {
		product, err := catalog.NewProduct(seed.name, seed.category, decimal.RequireFromString(seed.price))
		if err != nil {
			return nil, err
		}
		if err := product.Update(seed.name, seed.description); err != nil {
			return nil, err
		}
		product.SetDetails(seed.material, seed.dimensions, seed.care)
		product.SetImages(seed.imageURL, seed.images)
		product.SetFlags(seed.isNew, seed.isBest)
		if seed.salePrice != "" {
			if err := product.StartSale(decimal.RequireFromString(seed.salePrice)); err != nil {
				return nil, err
			}
		}
		if err := product.SetDisplayRating(seed.rating, seed.reviewCount); err != nil {
			return nil, err
		}
		if err := s.products.Save(ctx, product); err != nil {
			return nil, err
		}
		byName[seed.name] = product
	}
	return byName, nil
}

func (s *Seeder) seedReviews(ctx context.Context, products map[string]*catalog.Product) error {
	seeds := []struct {
		product string
		author  string
		rating  int
		comment string
	}{
		{"Collier Élégance Dorée", "Sophie L.", 5, "Absolument magnifique ! La qualité est au rendez-vous, je suis ravie de mon achat."},
		{"Bracelet \"Monogramme\"", "Manon B.", 4, "Très joli bracelet, la gravure est fine et bien réalisée. Un peu plus petit que ce que j'imaginais."},
		{"Coffret Cadeau \"Sérénité\"", "Camille D.", 5, "Le coffret est sublime, c'était le cadeau parfait. Présentation très soignée."},
		{"Collier Élégance Dorée", "Julie M.", 5, "Simple, élégant, je ne le quitte plus !"},
	}

	for _, seed := range seeds {
		product, ok := products[seed.product]
		if !ok {
			continue
		}
		review, err := catalog.NewReview(product.ID, seed.author, seed.rating, seed.comment)
		if err != nil {
			return err
		}
		if err := s.reviews.Append(ctx, review); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPages(ctx context.Context) error {
	seeds := []struct {
		slug    string
		title   string
		content string
	}{
		{content.SlugAbout, "À Propos", "<h2>Notre Histoire</h2><p>Inspiré par l'élégance intemporelle et la beauté des moments précieux, CA Coffrets Accessoires a pour mission de vous proposer des créations qui racontent une histoire. Fondée en 2023, notre marque est née d'une passion pour l'artisanat et le désir d'offrir des pièces uniques qui célèbrent la féminité.</p><p>Chaque article est choisi avec le plus grand soin pour sa qualité, son authenticité et sa capacité à transformer le quotidien en une occasion spéciale. Nos valeurs sont l'élégance, l'authenticité, et la durabilité.</p>"},
		{content.SlugContact, "Contact", "<h2>Nos Coordonnées</h2><p><strong>Email:</strong> coffretsaccessoires@gmail.com</p><p><strong>Téléphone:</strong> 54 235 633</p><p><strong>Adresse:</strong> manzel chaker Sfax Tunisia</p><h2>Envoyer un message</h2><p>Utilisez le formulaire ci-dessous pour nous contacter.</p>"},
		{"politique-de-livraison", "Politique de Livraison", "<h2>Livraison Standard</h2><p>Nos délais de livraison sont de 3 à 5 jours ouvrés pour la Tunisie. Les frais de livraison sont de 8 TND.</p><h2>Livraison Express</h2><p>Recevez votre commande en 24h à 48h pour 15 TND.</p>"},
		{"retours-echanges", "Retours et Échanges", "<h2>30 jours pour changer d'avis</h2><p>Vous pouvez nous retourner les articles sous 30 jours à condition qu'ils soient dans leur état d'origine. Les frais de retour sont à votre charge.</p>"},
	}

	for _, seed := range seeds {
		page, err := content.NewCustomPage(seed.slug, seed.title, seed.content)
		if err != nil {
			return err
		}
		if err := s.pages.Save(ctx, page); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedSocialPosts(ctx context.Context) error {
	seeds := []struct {
		platform  content.SocialPlatform
		imageURL  string
		caption   string
		dateLabel string
	}{
		{content.PlatformInstagram, "https://images.unsplash.com/photo-1598595958729-8772b22b5e4a?w=500&q=80", "Nouveautés en boutique ! ✨ #bijoux #nouveau", "Il y a 2 jours"},
		{content.PlatformFacebook, "https://images.unsplash.com/photo-1512314889357-e157c22f938d?w=500&q=80", "Notre coffret \"Sérénité\" est parfait pour un moment de détente.", "Il y a 5 jours"},
		{content.PlatformInstagram, "https://images.unsplash.com/photo-1557180295-76eee20542e8?w=500&q=80", "Inspiration du jour... 💍", "Il y a 1 semaine"},
		{content.PlatformInstagram, "https://images.unsplash.com/photo-1506795499318-5d15b0dba2a0?w=500&q=80", "Le cadeau parfait vous attend.", "Il y a 1 semaine"},
		{content.PlatformFacebook, "https://images.unsplash.com/photo-1611312526786-80d381b0a827?w=500&q=80", "Découvrez nos accessoires cheveux pour sublimer vos coiffures.", "Il y a 2 semaines"},
	}

	for _, seed := range seeds {
		post := content.NewSocialPost(seed.platform, seed.imageURL, seed.caption, "#", seed.dateLabel)
		if err := s.posts.Save(ctx, post); err != nil {
			return err
		}
	}
	return nil
}

func defaultSiteContent() content.SiteContent {
	return content.SiteContent{
		HeroSlogan:     "Sublimez vos moments",
		HeroSubtitle:   "Avec nos coffrets élégants et intemporels.",
		HeroButtonText: "Découvrir nos coffrets",
		HeroMediaType:  content.HeroMediaVideo,
		HeroVideoURL:   "https://assets.mixkit.co/videos/preview/mixkit-woman-in-a-floral-dress-in-a-field-of-flowers-48208-large.mp4",
		HeroImageURL:   "https://images.unsplash.com/photo-1595341888016-a392ef81b7de?q=80&w=2079",

		NewArrivalsTitle:   "Nouveautés",
		BestSellersTitle:   "Nos Meilleures Ventes",
		SpecialOffersTitle: "Offres Spéciales",

		UniverseTitle:      "Notre Univers",
		UniverseText:       "\"Chaque coffret raconte une histoire.\"",
		UniverseButtonText: "Découvrir notre histoire",
		UniverseImageURL:   "https://images.unsplash.com/photo-1581798319933-11a3733a4122?q=80&w=2070",

		SocialSectionTitle:  "Actualités",
		CustomerReviewTitle: "Ce que nos clients disent",

		HomepageSections: []content.HomepageSection{
			{
				ID:          "section1",
				HTMLContent: `<div class="text-center p-8 bg-rose-50 rounded-lg"><h3 class="text-2xl font-serif">Livraison Offerte</h3><p class="text-secondary">Pour toute commande supérieure à 100 TND.</p></div>`,
			},
		},

		ShopTitle: "Notre Boutique",
	}
}

func defaultSiteSettings() content.SiteSettings {
	return content.SiteSettings{
		SocialLinks: content.SocialLinks{
			Instagram: "https://instagram.com",
			Facebook:  "https://facebook.com",
			TikTok:    "https://tiktok.com",
		},
		Popup: content.PopupSettings{
			Enabled:    true,
			Title:      "-10% sur votre première commande !",
			Text:       "Inscrivez-vous à notre newsletter et recevez une réduction exclusive.",
			ButtonText: "S'inscrire",
			ButtonLink: "signup",
		},
	}
}
