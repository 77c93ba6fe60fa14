package content

import (
	"context"
	"sync"

	"github.com/boutique/storefront/internal/domain/content"
	"github.com/boutique/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// Upload slots for the staged image fields
const (
	SlotHeroImage     = "hero_image"
	SlotUniverseImage = "universe_image"
)

// EditorService is the admin staging workflow for the two site documents.
// Open deep-copies the published documents into a working copy; edits mutate
// only that copy until Commit publishes both documents in one step. Close
// discards the copy, and the storefront keeps reading the published versions
// throughout. Image uploads land asynchronously, so the working copy is
// guarded by a mutex.
type EditorService struct {
	site    content.SiteRepository
	encoder AssetEncoder
	logger  *zap.Logger

	mu             sync.Mutex
	open           bool
	stagedContent  content.SiteContent
	stagedSettings content.SiteSettings
}

// NewEditorService creates a new EditorService with no open staging session
func NewEditorService(site content.SiteRepository, encoder AssetEncoder, logger *zap.Logger) *EditorService {
	return &EditorService{
		site:    site,
		encoder: encoder,
		logger:  logger,
	}
}

// IsOpen reports whether a staging session is open
func (s *EditorService) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Open starts a staging session from the current published documents.
// Reopening discards any previous working copy.
func (s *EditorService) Open(ctx context.Context) error {
	published, err := s.site.LoadContent(ctx)
	if err != nil {
		return err
	}
	settings, err := s.site.LoadSettings(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stagedContent = published.Clone()
	s.stagedSettings = settings.Clone()
	s.open = true
	s.logger.Debug("content staging session opened")
	return nil
}

// StagedContent returns the working copy of the site content
func (s *EditorService) StagedContent() (content.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return content.SiteContent{}, shared.ErrInvalidState
	}
	return s.stagedContent.Clone(), nil
}

// StagedSettings returns the working copy of the site settings
func (s *EditorService) StagedSettings() (content.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return content.SiteSettings{}, shared.ErrInvalidState
	}
	return s.stagedSettings.Clone(), nil
}

// EditContent applies a mutation to the staged site content
func (s *EditorService) EditContent(fn func(*content.SiteContent)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return shared.ErrInvalidState
	}
	fn(&s.stagedContent)
	return nil
}

// EditSettings applies a mutation to the staged site settings
func (s *EditorService) EditSettings(fn func(*content.SiteSettings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return shared.ErrInvalidState
	}
	fn(&s.stagedSettings)
	return nil
}

// StageHeroImage uploads a hero image into the working copy. The encode runs
// asynchronously and a result from a superseded upload is discarded.
func (s *EditorService) StageHeroImage(ctx context.Context, mimeType string, data []byte) error {
	return s.stageImage(ctx, SlotHeroImage, mimeType, data, func(c *content.SiteContent, url string) {
		c.HeroImageURL = url
	})
}

// StageUniverseImage uploads the universe block image into the working copy
func (s *EditorService) StageUniverseImage(ctx context.Context, mimeType string, data []byte) error {
	return s.stageImage(ctx, SlotUniverseImage, mimeType, data, func(c *content.SiteContent, url string) {
		c.UniverseImageURL = url
	})
}

func (s *EditorService) stageImage(ctx context.Context, slot, mimeType string, data []byte, apply func(*content.SiteContent, string)) error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return shared.ErrInvalidState
	}
	s.mu.Unlock()

	s.encoder.Encode(ctx, slot, mimeType, data, func(dataURL string) {
		// The session may have closed while encoding; EditContent checks
		if err := s.EditContent(func(c *content.SiteContent) {
			apply(c, dataURL)
		}); err != nil {
			s.logger.Debug("upload dropped, staging session closed", zap.String("slot", slot))
		}
	})
	return nil
}

// Commit publishes the working copy: both documents replace the published
// versions atomically and the session stays open on a fresh copy
func (s *EditorService) Commit(ctx context.Context) error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return shared.ErrInvalidState
	}
	stagedContent := s.stagedContent.Clone()
	stagedSettings := s.stagedSettings.Clone()
	s.mu.Unlock()

	if err := s.site.Replace(ctx, stagedContent, stagedSettings); err != nil {
		return err
	}
	s.logger.Info("site content published")
	return nil
}

// Close discards the working copy without publishing
func (s *EditorService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	s.stagedContent = content.SiteContent{}
	s.stagedSettings = content.SiteSettings{}
	s.logger.Debug("content staging session closed")
}
