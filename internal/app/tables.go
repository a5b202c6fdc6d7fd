package app

import (
	"github.com/georgemunganga/printa-pos/internal/modules/category"
	"github.com/georgemunganga/printa-pos/internal/modules/invoiceitem"
	"github.com/georgemunganga/printa-pos/internal/modules/position"
	"github.com/georgemunganga/printa-pos/internal/modules/product"
	"github.com/georgemunganga/printa-pos/internal/modules/staff"
	"github.com/georgemunganga/printa-pos/internal/modules/user"
)

// Tables lists every model managed by AutoMigrate.
var Tables = []interface{}{
	&category.Category{},
	&product.Product{},
	&position.Position{},
	&staff.Staff{},
	&user.User{},
	&invoiceitem.InvoiceItem{},
}
