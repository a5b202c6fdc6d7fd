package staff

import "github.com/georgemunganga/printa-pos/internal/resource"

var Schema = resource.MustSchema(
	resource.Field{Name: "position_id", Rules: "required,integer"},
	resource.Field{Name: "name", Rules: "required,string,max=255"},
	resource.Field{Name: "gender", Rules: "required,string,max=10"},
	resource.Field{Name: "date_of_birth", Rules: "required,date"},
	resource.Field{Name: "place_of_birth", Rules: "required,string,max=255"},
	resource.Field{Name: "address", Rules: "required,string,max=255"},
	resource.Field{Name: "phone", Rules: "required,string,max=15"},
	resource.Field{Name: "nation_id_card", Rules: "required,string,max=20"},
)

var Definition = resource.Definition[Staff]{
	Name:     "staff",
	Schema:   Schema,
	NotFound: resource.NotFound{Status: "resource not found", StatusCode: 200},
}

func NewService(repo resource.Repository[Staff]) resource.Service[Staff] {
	return resource.NewService[Staff](Definition, repo)
}

func NewHandler(service resource.Service[Staff], opts resource.Options) *resource.Handler[Staff] {
	return resource.NewHandler(service, opts)
}
