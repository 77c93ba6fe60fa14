package content

import (
	"context"

	"github.com/boutique/storefront/internal/domain/content"
	"go.uber.org/zap"
)

// SiteService serves the published site documents to the storefront and
// gates the marketing popup to one showing per session
type SiteService struct {
	site   content.SiteRepository
	flags  SessionFlagStore
	logger *zap.Logger
}

// NewSiteService creates a new SiteService
func NewSiteService(site content.SiteRepository, flags SessionFlagStore, logger *zap.Logger) *SiteService {
	return &SiteService{
		site:   site,
		flags:  flags,
		logger: logger,
	}
}

// Content returns the published site content
func (s *SiteService) Content(ctx context.Context) (content.SiteContent, error) {
	return s.site.LoadContent(ctx)
}

// Settings returns the published site settings
func (s *SiteService) Settings(ctx context.Context) (content.SiteSettings, error) {
	return s.site.LoadSettings(ctx)
}

// PopupVisible reports whether the marketing popup should show: it must be
// enabled in the published settings and not yet dismissed this session
func (s *SiteService) PopupVisible(ctx context.Context) (bool, error) {
	settings, err := s.site.LoadSettings(ctx)
	if err != nil {
		return false, err
	}
	return settings.Popup.Enabled && !s.flags.Get(popupSeenKey), nil
}

// DismissPopup hides the popup for the rest of the session. Dismissal does
// not survive a restart; disabling the popup outright is a settings edit.
func (s *SiteService) DismissPopup() {
	s.flags.Set(popupSeenKey)
}
