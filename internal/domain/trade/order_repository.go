package trade

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for the append-only order ledger
type OrderRepository interface {
	// Append adds an order to the ledger
	Append(ctx context.Context, order *Order) error

	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds all orders in ledger order
	FindAll(ctx context.Context) ([]Order, error)

	// Count counts all orders
	Count(ctx context.Context) (int64, error)
}
