package invoiceitem

import (
	"net/http"

	"github.com/georgemunganga/printa-pos/internal/resource"
)

var Schema = resource.MustSchema(
	resource.Field{Name: "invoice_id", Rules: "required,integer"},
	resource.Field{Name: "product_id", Rules: "required,integer"},
	resource.Field{Name: "qty", Rules: "required,numeric"},
	resource.Field{Name: "price", Rules: "required,numeric"},
)

// Definition answers misses with 404, unlike the other entities.
var Definition = resource.Definition[InvoiceItem]{
	Name:     "invoiceitem",
	Schema:   Schema,
	NotFound: resource.NotFound{Status: "resource not found", StatusCode: http.StatusNotFound},
}

func NewService(repo resource.Repository[InvoiceItem]) resource.Service[InvoiceItem] {
	return resource.NewService[InvoiceItem](Definition, repo)
}

func NewHandler(service resource.Service[InvoiceItem], opts resource.Options) *resource.Handler[InvoiceItem] {
	return resource.NewHandler(service, opts)
}
