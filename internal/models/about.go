package models

// AboutFeature is a highlighted selling point on the about page. Icon must
// be one of the names the front-end icon set recognizes.
type AboutFeature struct {
	Icon        string `bson:"icon" json:"icon"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// AboutImage is an illustration inside the story section.
type AboutImage struct {
	URL string `bson:"url" json:"url"`
	Alt string `bson:"alt" json:"alt"`
}

// AboutStory is the long-form company story.
type AboutStory struct {
	Title   string       `bson:"title" json:"title"`
	Content []string     `bson:"content" json:"content"`
	Images  []AboutImage `bson:"images" json:"images"`
}

// AboutCommitment is the closing commitment statement.
type AboutCommitment struct {
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}

// About stores the about-page content. At most one document may exist.
type About struct {
	BaseModel    `bson:",inline"`
	Key          string          `bson:"key" json:"-"`
	Heading      string          `bson:"heading" json:"heading"`
	Introduction string          `bson:"introduction" json:"introduction"`
	Features     []AboutFeature  `bson:"features" json:"features"`
	Story        AboutStory      `bson:"story" json:"story"`
	Commitment   AboutCommitment `bson:"commitment" json:"commitment"`
}

// allowedFeatureIcons is the fixed icon vocabulary the front-end renders.
var allowedFeatureIcons = map[string]bool{
	"FaBirthdayCake": true,
	"FaBreadSlice":   true,
	"FaCookieBite":   true,
	"FaTruck":        true,
	"FaHeart":        true,
	"FaStar":         true,
	"FaAward":        true,
	"FaUsers":        true,
}

// ValidFeatureIcon reports whether icon belongs to the fixed icon set.
func ValidFeatureIcon(icon string) bool {
	return allowedFeatureIcons[icon]
}
