package resource

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("resource not found")

// Repository defines the storage of one entity type.
type Repository[T any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, rec *T) error
}
