package resource

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormRepo[T any] struct{ db *gorm.DB }

// NewGormRepository stores T in the table gorm derives for it.
func NewGormRepository[T any](db *gorm.DB) Repository[T] { return &gormRepo[T]{db: db} }

func (r *gormRepo[T]) List(ctx context.Context) ([]*T, error) {
	recs := make([]*T, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, errors.Wrap(err, "list records")
	}
	return recs, nil
}

func (r *gormRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get record %d", id)
	}
	return &rec, nil
}

func (r *gormRepo[T]) Create(ctx context.Context, rec *T) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(rec).Error, "create record")
}

func (r *gormRepo[T]) Update(ctx context.Context, rec *T) error {
	return errors.Wrap(r.db.WithContext(ctx).Save(rec).Error, "update record")
}

func (r *gormRepo[T]) Delete(ctx context.Context, rec *T) error {
	return errors.Wrap(r.db.WithContext(ctx).Delete(rec).Error, "delete record")
}
