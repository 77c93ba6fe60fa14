package catalog

import (
	"context"
	"sort"

	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ProductService handles catalog management and storefront listing
type ProductService struct {
	products catalog.ProductRepository
	encoder  AssetEncoder
	validate *validator.Validate
	collator *collate.Collator
	logger   *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, encoder AssetEncoder, logger *zap.Logger) *ProductService {
	return &ProductService{
		products: products,
		encoder:  encoder,
		validate: validator.New(),
		// The storefront copy is French; name ordering follows French collation
		collator: collate.New(language.French),
		logger:   logger,
	}
}

// Create creates a new catalog product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	product, err := catalog.NewProduct(req.Name, req.Category, req.Price)
	if err != nil {
		return nil, err
	}
	if err := applyProductFields(product, req.Name, req.Description, req.Category, req); err != nil {
		return nil, err
	}
	if err := product.SetDisplayRating(req.Rating, req.ReviewCount); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("id", product.ID.String()),
		zap.String("name", product.Name),
		zap.String("category", string(product.Category)),
	)
	return product, nil
}

// Update replaces the editable fields of an existing product. The display
// rating and review count are untouched.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*catalog.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	create := CreateProductRequest{
		Name: req.Name, Category: req.Category, Price: req.Price,
		SalePrice: req.SalePrice, IsOnSale: req.IsOnSale,
		Description: req.Description,
		Material:    req.Material, Dimensions: req.Dimensions, Care: req.Care,
		ImageURL: req.ImageURL, Images: req.Images,
		IsNew: req.IsNew, IsBestSeller: req.IsBestSeller,
	}
	if err := applyProductFields(product, req.Name, req.Description, req.Category, create); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", zap.String("id", product.ID.String()))
	return product, nil
}

// Delete removes a product from the catalog. Existing cart lines and past
// orders keep the frozen copy they already hold.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.String("id", id.String()))
	return nil
}

// Get retrieves a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.products.FindByID(ctx, id)
}

// List returns the catalog filtered by category and ordered by the sort
// option. The full collection is returned; there is no pagination.
func (s *ProductService) List(ctx context.Context, req ListProductsRequest) ([]catalog.Product, error) {
	var (
		products []catalog.Product
		err      error
	)

	switch req.Category {
	case "", CategoryAll:
		products, err = s.products.FindAll(ctx)
	default:
		category := catalog.Category(req.Category)
		if !category.IsValid() {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown product category")
		}
		products, err = s.products.FindByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}

	s.sortProducts(products, req.Sort)
	return products, nil
}

// NewArrivals returns products flagged as new, in insertion order
func (s *ProductService) NewArrivals(ctx context.Context) ([]catalog.Product, error) {
	return s.filterFlagged(ctx, func(p catalog.Product) bool { return p.IsNew })
}

// BestSellers returns products flagged as best sellers, in insertion order
func (s *ProductService) BestSellers(ctx context.Context) ([]catalog.Product, error) {
	return s.filterFlagged(ctx, func(p catalog.Product) bool { return p.IsBestSeller })
}

// SpecialOffers returns products currently on sale, in insertion order
func (s *ProductService) SpecialOffers(ctx context.Context) ([]catalog.Product, error) {
	return s.filterFlagged(ctx, func(p catalog.Product) bool { return p.IsOnSale })
}

// AttachImage uploads a product photo. The bytes encode to a data URL off
// the calling goroutine; the latest upload for the product wins and becomes
// the main image, joining the gallery.
func (s *ProductService) AttachImage(ctx context.Context, id uuid.UUID, mimeType string, data []byte) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}

	s.encoder.Encode(ctx, "product_"+id.String(), mimeType, data, func(dataURL string) {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			s.logger.Warn("image upload dropped, product gone", zap.String("id", id.String()))
			return
		}
		product.SetImages(dataURL, append([]string{dataURL}, product.Images...))
		if err := s.products.Save(ctx, product); err != nil {
			s.logger.Error("failed to save uploaded image", zap.String("id", id.String()), zap.Error(err))
		}
	})
	return nil
}

// Count counts all catalog products
func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.products.Count(ctx)
}

func (s *ProductService) filterFlagged(ctx context.Context, keep func(catalog.Product) bool) ([]catalog.Product, error) {
	all, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []catalog.Product
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProductService) sortProducts(products []catalog.Product, option SortOption) {
	switch option {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().LessThan(products[j].EffectivePrice())
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice().GreaterThan(products[j].EffectivePrice())
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return s.collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	default:
		// insertion order as returned by the repository
	}
}

func applyProductFields(product *catalog.Product, name, description string, category catalog.Category, req CreateProductRequest) error {
	if err := product.Update(name, description); err != nil {
		return err
	}
	if err := product.SetCategory(category); err != nil {
		return err
	}
	if err := product.SetPrice(req.Price); err != nil {
		return err
	}
	if req.IsOnSale && req.SalePrice != nil {
		if err := product.StartSale(*req.SalePrice); err != nil {
			return err
		}
	} else {
		product.EndSale()
	}
	product.SetDetails(req.Material, req.Dimensions, req.Care)
	product.SetImages(req.ImageURL, req.Images)
	product.SetFlags(req.IsNew, req.IsBestSeller)
	return nil
}
