package content

// HeroMediaType selects what the homepage hero displays
type HeroMediaType string

const (
	HeroMediaImage HeroMediaType = "image"
	HeroMediaVideo HeroMediaType = "video"
)

// HomepageSection is a free-form rich-text block on the homepage. The content
// arrives already sanitized; rendering it is the view's responsibility.
type HomepageSection struct {
	ID          string `json:"id"`
	HTMLContent string `json:"htmlContent"`
}

// SiteContent is the published site copy: a singleton document edited through
// the staging workflow and only ever replaced wholesale on commit.
type SiteContent struct {
	HeroSlogan     string        `json:"heroSlogan"`
	HeroSubtitle   string        `json:"heroSubtitle"`
	HeroButtonText string        `json:"heroButtonText"`
	HeroMediaType  HeroMediaType `json:"heroMediaType"`
	HeroImageURL   string        `json:"heroImageUrl"`
	HeroVideoURL   string        `json:"heroVideoUrl"`

	NewArrivalsTitle   string `json:"newArrivalsTitle"`
	BestSellersTitle   string `json:"bestSellersTitle"`
	SpecialOffersTitle string `json:"specialOffersTitle"`

	UniverseTitle      string `json:"universeTitle"`
	UniverseText       string `json:"universeText"`
	UniverseButtonText string `json:"universeButtonText"`
	UniverseImageURL   string `json:"universeImageUrl"`

	SocialSectionTitle  string `json:"socialSectionTitle"`
	CustomerReviewTitle string `json:"customerReviewTitle"`

	HomepageSections []HomepageSection `json:"homepageSections"`

	ShopTitle string `json:"shopTitle"`
}

// Clone returns a deep copy. The staged working copy must not alias the
// published sections slice.
func (c SiteContent) Clone() SiteContent {
	clone := c
	clone.HomepageSections = append([]HomepageSection(nil), c.HomepageSections...)
	return clone
}
