package category

import "github.com/georgemunganga/printa-pos/internal/resource"

var Schema = resource.MustSchema(
	resource.Field{Name: "name", Rules: "required,string,max=255"},
	resource.Field{Name: "description", Rules: "required,string,max=500"},
)

var Definition = resource.Definition[Category]{
	Name:     "category",
	Schema:   Schema,
	NotFound: resource.NotFound{Status: "resource not found", StatusCode: 200},
}

func NewService(repo resource.Repository[Category]) resource.Service[Category] {
	return resource.NewService[Category](Definition, repo)
}

func NewHandler(service resource.Service[Category], opts resource.Options) *resource.Handler[Category] {
	return resource.NewHandler(service, opts)
}
