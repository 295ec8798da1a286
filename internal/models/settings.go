package models

// SiteSettings is the single editable document behind the public contact
// block and the admin settings screen.
type SiteSettings struct {
	SiteName        string `bson:"siteName" json:"siteName"`
	SiteDescription string `bson:"siteDescription" json:"siteDescription"`
	PhoneNumber     string `bson:"phoneNumber" json:"phoneNumber"`
	WhatsApp        string `bson:"whatsapp" json:"whatsapp"`
	Instagram       string `bson:"instagram" json:"instagram"`
	TikTok          string `bson:"tiktok" json:"tiktok"`
	Address         string `bson:"address" json:"address"`
}

// DefaultSiteSettings is returned while no settings document has been saved.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:        "RAMMO Store",
		SiteDescription: "Custom apparel printing for teams and events",
		PhoneNumber:     "+6281234567890",
		WhatsApp:        "+6281234567890",
		Instagram:       "@rammostore",
		TikTok:          "@rammostore",
		Address:         "Jl. Pahlawan No. 123, Surabaya, Indonesia",
	}
}
