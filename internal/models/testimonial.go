package models

// Testimonial is a customer review shown on the public site.
type Testimonial struct {
	BaseModel `bson:",inline"`
	Name      string `bson:"name" json:"name"`
	Role      string `bson:"role" json:"role"`
	Image     string `bson:"image" json:"image"`
	Content   string `bson:"content" json:"content"`
	Rating    int    `bson:"rating" json:"rating"`
}
