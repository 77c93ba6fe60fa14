package persistence

import (
	"context"

	"github.com/boutique/storefront/internal/domain/content"
	"gorm.io/gorm"
)

// GormSocialPostRepository implements SocialPostRepository using GORM
type GormSocialPostRepository struct {
	db *gorm.DB
}

// NewGormSocialPostRepository creates a new GormSocialPostRepository
func NewGormSocialPostRepository(db *gorm.DB) *GormSocialPostRepository {
	return &GormSocialPostRepository{db: db}
}

// FindAll finds all posts in feed order
func (r *GormSocialPostRepository) FindAll(ctx context.Context) ([]content.SocialPost, error) {
	var posts []content.SocialPost
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Save creates or updates a post, assigning the insertion counter on first save
func (r *GormSocialPostRepository) Save(ctx context.Context, post *content.SocialPost) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if post.Seq == 0 {
			seq, err := nextSeq(tx, &content.SocialPost{})
			if err != nil {
				return err
			}
			post.Seq = seq
		}
		return tx.Save(post).Error
	})
}

// Ensure GormSocialPostRepository implements SocialPostRepository
var _ content.SocialPostRepository = (*GormSocialPostRepository)(nil)
