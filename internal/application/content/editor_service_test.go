package content

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/boutique/storefront/internal/domain/content"
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSiteRepository keeps the published documents in memory
type fakeSiteRepository struct {
	mu       sync.Mutex
	content  content.SiteContent
	settings content.SiteSettings
	replaces int
}

func (f *fakeSiteRepository) LoadContent(ctx context.Context) (content.SiteContent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content.Clone(), nil
}

func (f *fakeSiteRepository) LoadSettings(ctx context.Context) (content.SiteSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings.Clone(), nil
}

func (f *fakeSiteRepository) SaveContent(ctx context.Context, c content.SiteContent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = c.Clone()
	return nil
}

func (f *fakeSiteRepository) SaveSettings(ctx context.Context, s content.SiteSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings = s.Clone()
	return nil
}

func (f *fakeSiteRepository) Replace(ctx context.Context, c content.SiteContent, s content.SiteSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = c.Clone()
	f.settings = s.Clone()
	f.replaces++
	return nil
}

var _ content.SiteRepository = (*fakeSiteRepository)(nil)

// syncEncoder delivers encodes synchronously for tests
type syncEncoder struct{}

func (syncEncoder) Encode(ctx context.Context, slot, mimeType string, data []byte, deliver func(string)) uint64 {
	deliver("data:" + mimeType + ";base64,dGVzdA==")
	return 1
}

func newTestEditor() (*EditorService, *fakeSiteRepository) {
	site := &fakeSiteRepository{
		content:  content.SiteContent{HeroSlogan: "Sublimez vos moments"},
		settings: content.SiteSettings{Popup: content.PopupSettings{Enabled: true}},
	}
	return NewEditorService(site, syncEncoder{}, zap.NewNop()), site
}

func TestEditorService_StagingLifecycle(t *testing.T) {
	t.Run("operations before Open are rejected", func(t *testing.T) {
		svc, _ := newTestEditor()

		_, err := svc.StagedContent()
		assert.True(t, errors.Is(err, shared.ErrInvalidState))

		err = svc.EditContent(func(c *content.SiteContent) { c.HeroSlogan = "x" })
		assert.True(t, errors.Is(err, shared.ErrInvalidState))

		assert.True(t, errors.Is(svc.Commit(context.Background()), shared.ErrInvalidState))
	})

	t.Run("edits stay invisible until Commit", func(t *testing.T) {
		svc, site := newTestEditor()
		require.NoError(t, svc.Open(context.Background()))

		require.NoError(t, svc.EditContent(func(c *content.SiteContent) {
			c.HeroSlogan = "Nouvelle collection"
		}))

		published, err := site.LoadContent(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Sublimez vos moments", published.HeroSlogan)

		staged, err := svc.StagedContent()
		require.NoError(t, err)
		assert.Equal(t, "Nouvelle collection", staged.HeroSlogan)
	})

	t.Run("Commit publishes both documents at once", func(t *testing.T) {
		svc, site := newTestEditor()
		require.NoError(t, svc.Open(context.Background()))

		require.NoError(t, svc.EditContent(func(c *content.SiteContent) {
			c.HeroSlogan = "Nouvelle collection"
		}))
		require.NoError(t, svc.EditSettings(func(s *content.SiteSettings) {
			s.Popup.Enabled = false
		}))
		require.NoError(t, svc.Commit(context.Background()))

		published, err := site.LoadContent(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Nouvelle collection", published.HeroSlogan)

		settings, err := site.LoadSettings(context.Background())
		require.NoError(t, err)
		assert.False(t, settings.Popup.Enabled)
		assert.Equal(t, 1, site.replaces)

		// the session survives the commit
		assert.True(t, svc.IsOpen())
	})

	t.Run("Close discards the working copy", func(t *testing.T) {
		svc, site := newTestEditor()
		require.NoError(t, svc.Open(context.Background()))

		require.NoError(t, svc.EditContent(func(c *content.SiteContent) {
			c.HeroSlogan = "Jamais publié"
		}))
		svc.Close()

		assert.False(t, svc.IsOpen())
		published, err := site.LoadContent(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Sublimez vos moments", published.HeroSlogan)

		// reopening starts from the published documents again
		require.NoError(t, svc.Open(context.Background()))
		staged, err := svc.StagedContent()
		require.NoError(t, err)
		assert.Equal(t, "Sublimez vos moments", staged.HeroSlogan)
	})
}

func TestEditorService_StageImages(t *testing.T) {
	t.Run("hero upload lands in the working copy only", func(t *testing.T) {
		svc, site := newTestEditor()
		require.NoError(t, svc.Open(context.Background()))

		require.NoError(t, svc.StageHeroImage(context.Background(), "image/jpeg", []byte("test")))

		staged, err := svc.StagedContent()
		require.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;base64,dGVzdA==", staged.HeroImageURL)

		published, err := site.LoadContent(context.Background())
		require.NoError(t, err)
		assert.Empty(t, published.HeroImageURL)
	})

	t.Run("universe upload fills its own field", func(t *testing.T) {
		svc, _ := newTestEditor()
		require.NoError(t, svc.Open(context.Background()))

		require.NoError(t, svc.StageUniverseImage(context.Background(), "image/png", []byte("test")))

		staged, err := svc.StagedContent()
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,dGVzdA==", staged.UniverseImageURL)
		assert.Empty(t, staged.HeroImageURL)
	})

	t.Run("upload without an open session is rejected", func(t *testing.T) {
		svc, _ := newTestEditor()
		err := svc.StageHeroImage(context.Background(), "image/jpeg", []byte("test"))
		assert.True(t, errors.Is(err, shared.ErrInvalidState))
	})
}
