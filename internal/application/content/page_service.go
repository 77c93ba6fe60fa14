package content

import (
	"context"

	"github.com/boutique/storefront/internal/domain/content"
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageService manages the custom page collection. Unlike the site documents,
// page edits are not staged and apply immediately.
type PageService struct {
	pages    content.CustomPageRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewPageService creates a new PageService
func NewPageService(pages content.CustomPageRepository, logger *zap.Logger) *PageService {
	return &PageService{
		pages:    pages,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create adds a page. The slug is normalized first and must be unique across
// the collection.
func (s *PageService) Create(ctx context.Context, req CreatePageRequest) (*content.CustomPage, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	slug := content.NormalizeSlug(req.Slug)
	exists, err := s.pages.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	page, err := content.NewCustomPage(slug, req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	if err := s.pages.Save(ctx, page); err != nil {
		return nil, err
	}

	s.logger.Info("custom page created", zap.String("slug", page.Slug))
	return page, nil
}

// Update edits a page in place. Renaming onto an existing slug is rejected,
// and core pages keep their slug.
func (s *PageService) Update(ctx context.Context, id uuid.UUID, req UpdatePageRequest) (*content.CustomPage, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	page, err := s.pages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := content.NormalizeSlug(req.Slug)
	if slug != page.Slug {
		exists, err := s.pages.ExistsBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.ErrAlreadyExists
		}
	}

	if err := page.Update(slug, req.Title, req.Content); err != nil {
		return nil, err
	}
	if err := s.pages.Save(ctx, page); err != nil {
		return nil, err
	}

	s.logger.Info("custom page updated", zap.String("slug", page.Slug))
	return page, nil
}

// Delete removes a page. Core pages cannot be deleted.
func (s *PageService) Delete(ctx context.Context, id uuid.UUID) error {
	page, err := s.pages.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if page.Reserved() {
		return shared.NewDomainError("PAGE_RESERVED", "Core pages cannot be deleted")
	}

	if err := s.pages.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("custom page deleted", zap.String("slug", page.Slug))
	return nil
}

// Get retrieves a page by ID
func (s *PageService) Get(ctx context.Context, id uuid.UUID) (*content.CustomPage, error) {
	return s.pages.FindByID(ctx, id)
}

// BySlug retrieves a page by its slug (the storefront route)
func (s *PageService) BySlug(ctx context.Context, slug string) (*content.CustomPage, error) {
	return s.pages.FindBySlug(ctx, content.NormalizeSlug(slug))
}

// List returns all pages in insertion order
func (s *PageService) List(ctx context.Context) ([]content.CustomPage, error) {
	return s.pages.FindAll(ctx)
}
