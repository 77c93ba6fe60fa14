package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for the append-only review ledger
type ReviewRepository interface {
	// Append adds a review to the ledger
	Append(ctx context.Context, review *Review) error

	// FindByProduct finds all reviews for a product, newest first
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error)

	// FindAll finds all reviews, newest first
	FindAll(ctx context.Context) ([]Review, error)
}
