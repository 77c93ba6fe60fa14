package catalog

import (
	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SortOption selects the catalog listing order
type SortOption string

const (
	SortDefault   SortOption = "default" // insertion order
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNameAsc   SortOption = "name-asc"
)

// IsValid returns true for a known sort option
func (s SortOption) IsValid() bool {
	switch s {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	}
	return false
}

// CategoryAll lists every category instead of filtering
const CategoryAll = "all"

// CreateProductRequest carries the admin product form for a new product.
// Rating and ReviewCount are editorial display values, defaulting to zero.
type CreateProductRequest struct {
	Name         string           `validate:"required,max=200"`
	Category     catalog.Category `validate:"required"`
	Price        decimal.Decimal
	SalePrice    *decimal.Decimal
	IsOnSale     bool
	Description  string
	Material     string
	Dimensions   string
	Care         string
	ImageURL     string
	Images       []string
	IsNew        bool
	IsBestSeller bool
	Rating       float64 `validate:"gte=0,lte=5"`
	ReviewCount  int     `validate:"gte=0"`
}

// UpdateProductRequest carries the admin product form for an existing
// product. The form never edits Rating/ReviewCount, so they are preserved.
type UpdateProductRequest struct {
	Name         string           `validate:"required,max=200"`
	Category     catalog.Category `validate:"required"`
	Price        decimal.Decimal
	SalePrice    *decimal.Decimal
	IsOnSale     bool
	Description  string
	Material     string
	Dimensions   string
	Care         string
	ImageURL     string
	Images       []string
	IsNew        bool
	IsBestSeller bool
}

// ListProductsRequest selects and orders the catalog listing
type ListProductsRequest struct {
	// Category is an exact category value, or "all"/"" for everything
	Category string
	Sort     SortOption
}

// AddReviewRequest carries the product page review form
type AddReviewRequest struct {
	ProductID uuid.UUID `validate:"required"`
	Author    string    `validate:"required"`
	Rating    int       `validate:"required,min=1,max=5"`
	Comment   string    `validate:"required"`
}
