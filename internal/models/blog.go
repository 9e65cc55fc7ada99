package models

import "time"

// BlogPost is a public blog article managed from the admin panel.
type BlogPost struct {
	BaseModel `bson:",inline"`
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Excerpt   string    `bson:"excerpt" json:"excerpt"`
	Author    string    `bson:"author" json:"author"`
	Date      time.Time `bson:"date" json:"date"`
	Image     string    `bson:"image" json:"image"`
	Tags      []string  `bson:"tags" json:"tags"`
}
