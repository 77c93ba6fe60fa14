package content

import (
	"context"

	"github.com/google/uuid"
)

// SiteRepository persists the two published singleton documents. Replace is
// the commit path: both documents change in one step or neither does.
type SiteRepository interface {
	// LoadContent loads the published site content
	LoadContent(ctx context.Context) (SiteContent, error)

	// LoadSettings loads the published site settings
	LoadSettings(ctx context.Context) (SiteSettings, error)

	// SaveContent replaces only the published site content
	SaveContent(ctx context.Context, c SiteContent) error

	// SaveSettings replaces only the published site settings
	SaveSettings(ctx context.Context, s SiteSettings) error

	// Replace atomically replaces both published documents
	Replace(ctx context.Context, c SiteContent, s SiteSettings) error
}

// CustomPageRepository persists the custom page collection
type CustomPageRepository interface {
	// FindByID finds a page by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CustomPage, error)

	// FindBySlug finds a page by its slug
	FindBySlug(ctx context.Context, slug string) (*CustomPage, error)

	// ExistsBySlug checks whether a page with the slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// FindAll finds all pages in insertion order
	FindAll(ctx context.Context) ([]CustomPage, error)

	// Save creates or updates a page
	Save(ctx context.Context, page *CustomPage) error

	// Delete deletes a page
	Delete(ctx context.Context, id uuid.UUID) error
}

// SocialPostRepository persists the seeded social feed
type SocialPostRepository interface {
	// FindAll finds all posts in feed order
	FindAll(ctx context.Context) ([]SocialPost, error)

	// Save creates or updates a post
	Save(ctx context.Context, post *SocialPost) error
}
