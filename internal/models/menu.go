package models

// Category is a menu category on the public site.
type Category struct {
	BaseModel   `bson:",inline"`
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
	Link        string `bson:"link" json:"link"`
}

// Product is a menu item belonging to a category. CategoryName is copied
// from the referenced category at write time; renaming a category later
// does not cascade to existing products.
type Product struct {
	BaseModel    `bson:",inline"`
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Description  string `bson:"description" json:"description"`
	Price        string `bson:"price" json:"price"`
	CategoryID   string `bson:"categoryId" json:"categoryId"`
	CategoryName string `bson:"categoryName" json:"categoryName"`
	Image        string `bson:"image" json:"image"`
}
