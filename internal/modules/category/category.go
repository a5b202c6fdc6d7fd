package category

import "github.com/georgemunganga/printa-pos/internal/resource"

// Category groups products on the point of sale.
type Category struct {
	resource.Model
	Name        string `gorm:"size:255;not null" json:"name" form:"name"`
	Description string `gorm:"size:500;not null" json:"description" form:"description"`
}

func (Category) TableName() string { return "categories" }
