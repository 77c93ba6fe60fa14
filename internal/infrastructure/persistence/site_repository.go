package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/boutique/storefront/internal/domain/content"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// siteDocument stores a published singleton document as a JSON row keyed by
// name. Two rows exist: the site content and the site settings.
type siteDocument struct {
	Name string `gorm:"primaryKey;type:varchar(50)"`
	Body string `gorm:"type:text;not null"`
}

func (siteDocument) TableName() string {
	return "site_documents"
}

const (
	docSiteContent  = "site_content"
	docSiteSettings = "site_settings"
)

// GormSiteRepository implements SiteRepository using GORM
type GormSiteRepository struct {
	db *gorm.DB
}

// NewGormSiteRepository creates a new GormSiteRepository
func NewGormSiteRepository(db *gorm.DB) *GormSiteRepository {
	return &GormSiteRepository{db: db}
}

// LoadContent loads the published site content
func (r *GormSiteRepository) LoadContent(ctx context.Context) (content.SiteContent, error) {
	var c content.SiteContent
	if err := r.load(ctx, r.db, docSiteContent, &c); err != nil {
		return content.SiteContent{}, err
	}
	return c, nil
}

// LoadSettings loads the published site settings
func (r *GormSiteRepository) LoadSettings(ctx context.Context) (content.SiteSettings, error) {
	var s content.SiteSettings
	if err := r.load(ctx, r.db, docSiteSettings, &s); err != nil {
		return content.SiteSettings{}, err
	}
	return s, nil
}

// SaveContent replaces only the published site content
func (r *GormSiteRepository) SaveContent(ctx context.Context, c content.SiteContent) error {
	return r.store(ctx, r.db, docSiteContent, c)
}

// SaveSettings replaces only the published site settings
func (r *GormSiteRepository) SaveSettings(ctx context.Context, s content.SiteSettings) error {
	return r.store(ctx, r.db, docSiteSettings, s)
}

// Replace atomically replaces both published documents. Either both new
// versions become visible or neither does.
func (r *GormSiteRepository) Replace(ctx context.Context, c content.SiteContent, s content.SiteSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.store(ctx, tx, docSiteContent, c); err != nil {
			return err
		}
		return r.store(ctx, tx, docSiteSettings, s)
	})
}

func (r *GormSiteRepository) load(ctx context.Context, tx *gorm.DB, name string, out any) error {
	var doc siteDocument
	if err := tx.WithContext(ctx).First(&doc, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Missing document reads as the zero value, seed fills it in
			return nil
		}
		return err
	}
	if err := json.Unmarshal([]byte(doc.Body), out); err != nil {
		return fmt.Errorf("failed to decode site document %q: %w", name, err)
	}
	return nil
}

func (r *GormSiteRepository) store(ctx context.Context, tx *gorm.DB, name string, in any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode site document %q: %w", name, err)
	}
	doc := siteDocument{Name: name, Body: string(body)}
	return tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"body"}),
		}).
		Create(&doc).Error
}

// Ensure GormSiteRepository implements SiteRepository
var _ content.SiteRepository = (*GormSiteRepository)(nil)
