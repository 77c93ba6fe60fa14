package content

import (
	"context"

	"github.com/boutique/storefront/internal/domain/content"
	"go.uber.org/zap"
)

// SocialService serves the homepage social feed
type SocialService struct {
	posts  content.SocialPostRepository
	logger *zap.Logger
}

// NewSocialService creates a new SocialService
func NewSocialService(posts content.SocialPostRepository, logger *zap.Logger) *SocialService {
	return &SocialService{posts: posts, logger: logger}
}

// Feed returns all posts in feed order
func (s *SocialService) Feed(ctx context.Context) ([]content.SocialPost, error) {
	return s.posts.FindAll(ctx)
}
