package catalog

import (
	"time"

	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/boutique/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Category represents the product category
type Category string

const (
	CategoryJewelry      Category = "jewelry"
	CategoryBoxes        Category = "boxes"
	CategoryAccessories  Category = "accessories"
	CategoryPersonalized Category = "personalized"
)

// AllCategories returns every valid category in display order
func AllCategories() []Category {
	return []Category{CategoryJewelry, CategoryBoxes, CategoryAccessories, CategoryPersonalized}
}

// IsValid returns true if the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategoryJewelry, CategoryBoxes, CategoryAccessories, CategoryPersonalized:
		return true
	}
	return false
}

// Details holds the descriptive attributes shown on the product page
type Details struct {
	Material   string `gorm:"type:text"`
	Dimensions string `gorm:"type:text"`
	Care       string `gorm:"type:text"`
}

// Product represents an item in the catalog
// Rating and ReviewCount are editorial display fields; they are not recomputed
// from the review ledger.
type Product struct {
	shared.BaseEntity
	Name         string              `gorm:"type:varchar(200);not null"`
	Category     Category            `gorm:"type:varchar(20);not null;index"`
	Price        decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	SalePrice    decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	Description  string              `gorm:"type:text"`
	Details      Details             `gorm:"embedded;embeddedPrefix:detail_"`
	ImageURL     string              `gorm:"type:text"`
	Images       []string            `gorm:"serializer:json;type:text"`
	Rating       float64             `gorm:"not null;default:0"`
	ReviewCount  int                 `gorm:"not null;default:0"`
	IsNew        bool                `gorm:"not null;default:false"`
	IsBestSeller bool                `gorm:"not null;default:false"`
	IsOnSale     bool                `gorm:"not null;default:false"`
	Seq          int64               `gorm:"not null;index"` // insertion order, assigned by the repository
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with a fresh identity
func NewProduct(name string, category Category, price decimal.Decimal) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown product category")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Category:   category,
		Price:      price,
	}, nil
}

// Update replaces the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateName(name); err != nil {
		return err
	}
	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	return nil
}

// SetCategory changes the product category
func (p *Product) SetCategory(category Category) error {
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown product category")
	}
	p.Category = category
	p.UpdatedAt = time.Now()
	return nil
}

// SetPrice changes the base price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// StartSale marks the product on sale at the given price.
// The sale price is expected (but not required) to be below the base price.
func (p *Product) StartSale(salePrice decimal.Decimal) error {
	if salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	p.SalePrice = decimal.NewNullDecimal(salePrice)
	p.IsOnSale = true
	p.UpdatedAt = time.Now()
	return nil
}

// EndSale takes the product off sale, clearing the sale price
func (p *Product) EndSale() {
	p.SalePrice = decimal.NullDecimal{}
	p.IsOnSale = false
	p.UpdatedAt = time.Now()
}

// SetFlags sets the merchandising flags
func (p *Product) SetFlags(isNew, isBestSeller bool) {
	p.IsNew = isNew
	p.IsBestSeller = isBestSeller
	p.UpdatedAt = time.Now()
}

// SetImages replaces the main image and gallery
func (p *Product) SetImages(main string, gallery []string) {
	p.ImageURL = main
	p.Images = append([]string(nil), gallery...)
	p.UpdatedAt = time.Now()
}

// SetDetails replaces the descriptive attributes
func (p *Product) SetDetails(material, dimensions, care string) {
	p.Details = Details{Material: material, Dimensions: dimensions, Care: care}
	p.UpdatedAt = time.Now()
}

// SetDisplayRating sets the editorial rating and review count shown on cards
func (p *Product) SetDisplayRating(rating float64, reviewCount int) error {
	if rating < 0 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 0 and 5")
	}
	if reviewCount < 0 {
		return shared.NewDomainError("INVALID_RATING", "Review count cannot be negative")
	}
	p.Rating = rating
	p.ReviewCount = reviewCount
	p.UpdatedAt = time.Now()
	return nil
}

// EffectivePrice returns the sale price when the product is on sale and a sale
// price is present, otherwise the base price
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.IsOnSale && p.SalePrice.Valid {
		return p.SalePrice.Decimal
	}
	return p.Price
}

// EffectivePriceMoney returns the effective price as a Money value object
func (p *Product) EffectivePriceMoney() valueobject.Money {
	return valueobject.NewMoneyTND(p.EffectivePrice())
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
