package position

import "github.com/georgemunganga/printa-pos/internal/resource"

var Schema = resource.MustSchema(
	resource.Field{Name: "branch_id", Rules: "required,numeric"},
	resource.Field{Name: "name", Rules: "required,string,max=255"},
	resource.Field{Name: "description", Rules: "nullable,string,max=500"},
)

var Definition = resource.Definition[Position]{
	Name:     "position",
	Schema:   Schema,
	NotFound: resource.NotFound{Status: "resource not found", StatusCode: 200},
}

func NewService(repo resource.Repository[Position]) resource.Service[Position] {
	return resource.NewService[Position](Definition, repo)
}

func NewHandler(service resource.Service[Position], opts resource.Options) *resource.Handler[Position] {
	return resource.NewHandler(service, opts)
}
