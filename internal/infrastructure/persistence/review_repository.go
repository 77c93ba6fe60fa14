package persistence

import (
	"context"

	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReviewRepository implements the append-only ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Append adds a review to the ledger
func (r *GormReviewRepository) Append(ctx context.Context, review *catalog.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &catalog.Review{})
		if err != nil {
			return err
		}
		review.Seq = seq
		return tx.Create(review).Error
	})
}

// FindByProduct finds all reviews for a product, newest first
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Review, error) {
	var reviews []catalog.Review
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("seq DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindAll finds all reviews, newest first
func (r *GormReviewRepository) FindAll(ctx context.Context) ([]catalog.Review, error) {
	var reviews []catalog.Review
	if err := r.db.WithContext(ctx).Order("seq DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Ensure GormReviewRepository implements ReviewRepository
var _ catalog.ReviewRepository = (*GormReviewRepository)(nil)
