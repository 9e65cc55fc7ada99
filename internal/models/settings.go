package models

// SingletonKey pins singleton documents (Settings, About) to a constant
// value backed by a unique index, so at most one can ever exist.
const SingletonKey = "singleton"

// Theme holds the site colour scheme and typography.
type Theme struct {
	PrimaryColor    string `bson:"primaryColor" json:"primaryColor"`
	SecondaryColor  string `bson:"secondaryColor" json:"secondaryColor"`
	FontFamily      string `bson:"fontFamily" json:"fontFamily"`
	BackgroundColor string `bson:"backgroundColor" json:"backgroundColor"`
}

// Hero holds the landing page hero section content.
type Hero struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	ImageURL    string `bson:"imageUrl" json:"imageUrl"`
}

// SocialMedia holds the social profile links shown in the footer.
type SocialMedia struct {
	Facebook  string `bson:"facebook" json:"facebook"`
	Instagram string `bson:"instagram" json:"instagram"`
	Twitter   string `bson:"twitter" json:"twitter"`
	Whatsapp  string `bson:"whatsapp" json:"whatsapp"`
}

// Settings stores site-wide content managed via the admin panel.
// There should be only one document (singleton pattern).
type Settings struct {
	BaseModel            `bson:",inline"`
	Key                  string      `bson:"key" json:"-"`
	Theme                Theme       `bson:"theme" json:"theme"`
	Hero                 Hero        `bson:"hero" json:"hero"`
	SiteName             string      `bson:"siteName" json:"siteName"`
	ContactEmail         string      `bson:"contactEmail" json:"contactEmail"`
	ContactPhone         string      `bson:"contactPhone" json:"contactPhone"`
	Address              string      `bson:"address" json:"address"`
	OpeningHours         string      `bson:"openingHours" json:"openingHours"`
	SocialMedia          SocialMedia `bson:"socialMedia" json:"socialMedia"`
	MetaDescription      string      `bson:"metaDescription" json:"metaDescription"`
	OrderingInstructions string      `bson:"orderingInstructions" json:"orderingInstructions"`
}
