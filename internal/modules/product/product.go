package product

import "github.com/georgemunganga/printa-pos/internal/resource"

// Product is an item for sale. Image and Description are optional.
type Product struct {
	resource.Model
	Name        string  `gorm:"size:255;not null" json:"name" form:"name"`
	Cost        float64 `gorm:"not null" json:"cost" form:"cost"`
	Price       float64 `gorm:"not null" json:"price" form:"price"`
	Image       *string `gorm:"size:255" json:"image" form:"image"`
	Description *string `gorm:"type:text" json:"description" form:"description"`
	CategoryID  int64   `gorm:"index;not null" json:"category_id" form:"category_id"`
}

func (Product) TableName() string { return "products" }
