package models

// GalleryItem is a photo shown on the public gallery page.
type GalleryItem struct {
	BaseModel   `bson:",inline"`
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
	Category    string `bson:"category" json:"category"`
}
