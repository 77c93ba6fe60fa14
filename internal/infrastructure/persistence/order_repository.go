package persistence

import (
	"context"
	"errors"

	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/boutique/storefront/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements the append-only OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Append adds an order to the ledger
func (r *GormOrderRepository) Append(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &trade.Order{})
		if err != nil {
			return err
		}
		order.Seq = seq
		return tx.Create(order).Error
	})
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all orders in ledger order
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	var orders []trade.Order
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts all orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
