package content

import "github.com/boutique/storefront/internal/domain/shared"

// SocialPlatform identifies the network a post came from
type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformFacebook  SocialPlatform = "facebook"
)

// SocialPost is a seeded social feed entry shown on the homepage
type SocialPost struct {
	shared.BaseEntity
	Platform  SocialPlatform `gorm:"type:varchar(20);not null"`
	ImageURL  string         `gorm:"type:text"`
	Caption   string         `gorm:"type:text"`
	Link      string         `gorm:"type:text"`
	DateLabel string         `gorm:"type:varchar(50)"`
	Seq       int64          `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SocialPost) TableName() string {
	return "social_posts"
}

// NewSocialPost creates a feed entry
func NewSocialPost(platform SocialPlatform, imageURL, caption, link, dateLabel string) *SocialPost {
	return &SocialPost{
		BaseEntity: shared.NewBaseEntity(),
		Platform:   platform,
		ImageURL:   imageURL,
		Caption:    caption,
		Link:       link,
		DateLabel:  dateLabel,
	}
}
