package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll finds all products in insertion order
	FindAll(ctx context.Context) ([]Product, error)

	// FindByCategory finds all products in a category, in insertion order
	FindByCategory(ctx context.Context, category Category) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product. Existing cart lines and past orders keep
	// their frozen copies.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts all products
	Count(ctx context.Context) (int64, error)
}
