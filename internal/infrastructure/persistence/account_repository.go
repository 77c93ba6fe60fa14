package persistence

import (
	"context"
	"errors"

	"github.com/boutique/storefront/internal/domain/identity"
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by its ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	var account identity.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByEmail finds an account by exact, case-sensitive email match. SQLite
// compares TEXT with BINARY collation by default, which is what we want.
func (r *GormAccountRepository) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	var account identity.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// ExistsByEmail checks whether an account with the exact email exists
func (r *GormAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Account{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an account, assigning the insertion counter on first save
func (r *GormAccountRepository) Save(ctx context.Context, account *identity.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if account.Seq == 0 {
			seq, err := nextSeq(tx, &identity.Account{})
			if err != nil {
				return err
			}
			account.Seq = seq
		}
		return tx.Save(account).Error
	})
}

// FindAll finds all accounts in signup order
func (r *GormAccountRepository) FindAll(ctx context.Context) ([]identity.Account, error) {
	var accounts []identity.Account
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Count counts all accounts
func (r *GormAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.Account{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormAccountRepository implements AccountRepository
var _ identity.AccountRepository = (*GormAccountRepository)(nil)
