package persistence

import (
	"context"
	"errors"

	"github.com/boutique/storefront/internal/domain/content"
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomPageRepository implements CustomPageRepository using GORM
type GormCustomPageRepository struct {
	db *gorm.DB
}

// NewGormCustomPageRepository creates a new GormCustomPageRepository
func NewGormCustomPageRepository(db *gorm.DB) *GormCustomPageRepository {
	return &GormCustomPageRepository{db: db}
}

// FindByID finds a page by its ID
func (r *GormCustomPageRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.CustomPage, error) {
	var page content.CustomPage
	if err := r.db.WithContext(ctx).First(&page, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

// FindBySlug finds a page by its slug
func (r *GormCustomPageRepository) FindBySlug(ctx context.Context, slug string) (*content.CustomPage, error) {
	var page content.CustomPage
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

// ExistsBySlug checks whether a page with the slug exists
func (r *GormCustomPageRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&content.CustomPage{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all pages in insertion order
func (r *GormCustomPageRepository) FindAll(ctx context.Context) ([]content.CustomPage, error) {
	var pages []content.CustomPage
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Save creates or updates a page, assigning the insertion counter on first save
func (r *GormCustomPageRepository) Save(ctx context.Context, page *content.CustomPage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if page.Seq == 0 {
			seq, err := nextSeq(tx, &content.CustomPage{})
			if err != nil {
				return err
			}
			page.Seq = seq
		}
		return tx.Save(page).Error
	})
}

// Delete deletes a page
func (r *GormCustomPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.CustomPage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCustomPageRepository implements CustomPageRepository
var _ content.CustomPageRepository = (*GormCustomPageRepository)(nil)
