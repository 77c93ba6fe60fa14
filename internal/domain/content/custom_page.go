package content

import (
	"strings"

	"github.com/boutique/storefront/internal/domain/shared"
)

// Reserved slugs belong to the two core pages. They can be edited but never
// deleted, and their slug is immutable.
const (
	SlugAbout   = "about"
	SlugContact = "contact"
)

// IsReservedSlug reports whether the slug names a core page
func IsReservedSlug(slug string) bool {
	return slug == SlugAbout || slug == SlugContact
}

// NormalizeSlug lowercases the slug and replaces whitespace runs with dashes
func NormalizeSlug(slug string) string {
	return strings.Join(strings.Fields(strings.ToLower(slug)), "-")
}

// CustomPage is an admin-editable site page addressed by slug. Unlike the
// site documents, custom pages are not staged: edits apply immediately.
type CustomPage struct {
	shared.BaseEntity
	Slug    string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Title   string `gorm:"type:varchar(200);not null"`
	Content string `gorm:"type:text"` // trusted HTML fragment, sanitized upstream
	Seq     int64  `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (CustomPage) TableName() string {
	return "custom_pages"
}

// NewCustomPage creates a page with a normalized slug
func NewCustomPage(slug, title, htmlContent string) (*CustomPage, error) {
	slug = NormalizeSlug(slug)
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Page title cannot be empty")
	}

	return &CustomPage{
		BaseEntity: shared.NewBaseEntity(),
		Slug:       slug,
		Title:      title,
		Content:    htmlContent,
	}, nil
}

// Reserved reports whether this page is one of the core pages
func (p *CustomPage) Reserved() bool {
	return IsReservedSlug(p.Slug)
}

// Update replaces title, content and (for non-core pages) the slug
func (p *CustomPage) Update(slug, title, htmlContent string) error {
	slug = NormalizeSlug(slug)
	if p.Reserved() && slug != p.Slug {
		return shared.NewDomainError("SLUG_IMMUTABLE", "The slug of a core page cannot be changed")
	}
	if err := validateSlug(slug); err != nil {
		return err
	}
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Page title cannot be empty")
	}

	p.Slug = slug
	p.Title = title
	p.Content = htmlContent
	return nil
}

func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Page slug cannot be empty")
	}
	if len(slug) > 100 {
		return shared.NewDomainError("INVALID_SLUG", "Page slug cannot exceed 100 characters")
	}
	return nil
}
