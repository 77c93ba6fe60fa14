package content

// SocialLinks holds the footer social media URLs
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
}

// PopupSettings configures the marketing popup shown once per session
type PopupSettings struct {
	Enabled    bool   `json:"enabled"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
}

// SiteSettings is the published settings document, staged and committed
// together with SiteContent.
type SiteSettings struct {
	SocialLinks SocialLinks   `json:"socialLinks"`
	Popup       PopupSettings `json:"popup"`
}

// Clone returns a copy of the settings
func (s SiteSettings) Clone() SiteSettings {
	return s
}
