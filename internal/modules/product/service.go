package product

import "github.com/georgemunganga/printa-pos/internal/resource"

var Schema = resource.MustSchema(
	resource.Field{Name: "name", Rules: "required,string,max=255"},
	resource.Field{Name: "cost", Rules: "required,numeric"},
	resource.Field{Name: "price", Rules: "required,numeric"},
	resource.Field{Name: "image", Rules: "nullable,string,max=255"},
	resource.Field{Name: "description", Rules: "nullable,string"},
	resource.Field{Name: "category_id", Rules: "required,integer"},
)

var Definition = resource.Definition[Product]{
	Name:     "product",
	Schema:   Schema,
	NotFound: resource.NotFound{Status: "resource not found", StatusCode: 200},
}

func NewService(repo resource.Repository[Product]) resource.Service[Product] {
	return resource.NewService[Product](Definition, repo)
}

func NewHandler(service resource.Service[Product], opts resource.Options) *resource.Handler[Product] {
	return resource.NewHandler(service, opts)
}
