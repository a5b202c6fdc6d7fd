package invoiceitem

import "github.com/georgemunganga/printa-pos/internal/resource"

// InvoiceItem is one product line of an invoice.
type InvoiceItem struct {
	resource.Model
	InvoiceID int64   `gorm:"index;not null" json:"invoice_id" form:"invoice_id"`
	ProductID int64   `gorm:"index;not null" json:"product_id" form:"product_id"`
	Qty       float64 `gorm:"not null" json:"qty" form:"qty"`
	Price     float64 `gorm:"not null" json:"price" form:"price"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }
