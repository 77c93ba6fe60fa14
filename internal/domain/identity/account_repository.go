package identity

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the interface for customer account persistence
type AccountRepository interface {
	// FindByID finds an account by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// FindByEmail finds an account by exact, case-sensitive email match
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// ExistsByEmail checks whether an account with the exact email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates an account
	Save(ctx context.Context, account *Account) error

	// FindAll finds all accounts in signup order
	FindAll(ctx context.Context) ([]Account, error)

	// Count counts all accounts
	Count(ctx context.Context) (int64, error)
}
