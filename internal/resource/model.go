package resource

import "time"

// Model carries the identity and timestamps every record shares.
// It is embedded by the entity structs of each module.
type Model struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"-"`
	CreatedAt time.Time `json:"created_at" form:"-"`
	UpdatedAt time.Time `json:"updated_at" form:"-"`
}

// Base returns the embedded model.
func (m *Model) Base() *Model { return m }

// Entity is satisfied by any pointer to a struct embedding Model.
type Entity interface {
	Base() *Model
}

// Record constrains a type parameter to *T where *T is an Entity.
type Record[T any] interface {
	*T
	Entity
}

// Fields is the flat key/value map submitted with a request.
type Fields map[string]interface{}
