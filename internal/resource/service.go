package resource

import (
	"context"

	"go.uber.org/zap"
)

// NotFound is the payload an entity answers with when a lookup by id misses.
type NotFound struct {
	Status     string
	StatusCode int
}

// DefaultNotFound is used when a Definition leaves NotFound empty.
var DefaultNotFound = NotFound{Status: "resource not found", StatusCode: 200}

// Definition describes one entity to the generic service and handler.
type Definition[T any] struct {
	// Name is the route segment, e.g. "category".
	Name     string
	Schema   Schema
	NotFound NotFound
	// BeforeSave runs after assignment on create and update.
	BeforeSave func(ctx context.Context, rec *T) error
}

func (d Definition[T]) notFound() NotFound {
	nf := d.NotFound
	if nf.Status == "" {
		nf.Status = DefaultNotFound.Status
	}
	if nf.StatusCode == 0 {
		nf.StatusCode = DefaultNotFound.StatusCode
	}
	return nf
}

// Service defines the CRUD logic shared by every entity.
type Service[T any] interface {
	Definition() Definition[T]
	List(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, input Fields) (*T, error)
	Update(ctx context.Context, id int64, input Fields) (*T, error)
	Delete(ctx context.Context, id int64) (*T, error)
}

type service[T any, P Record[T]] struct {
	def  Definition[T]
	repo Repository[T]
}

func NewService[T any, P Record[T]](def Definition[T], repo Repository[T]) Service[T] {
	return &service[T, P]{def: def, repo: repo}
}

func (s *service[T, P]) Definition() Definition[T] { return s.def }

func (s *service[T, P]) List(ctx context.Context) ([]*T, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = make([]*T, 0)
	}
	return recs, nil
}

// Create validates input and persists a new record built from it.
// Validation failures come back as *ValidationError.
func (s *service[T, P]) Create(ctx context.Context, input Fields) (*T, error) {
	if errs := s.def.Schema.Validate(input); errs.Len() > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	rec := new(T)
	if err := s.save(ctx, rec, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	zap.L().Info("record created", zap.String("resource", s.def.Name), zap.Int64("id", P(rec).Base().ID))
	return rec, nil
}

// Update replaces every editable field of the record. Input is not validated.
func (s *service[T, P]) Update(ctx context.Context, id int64, input Fields) (*T, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, rec, input); err != nil {
		return nil, err
	}
	P(rec).Base().ID = id
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	zap.L().Info("record updated", zap.String("resource", s.def.Name), zap.Int64("id", id))
	return rec, nil
}

// Delete removes the record and returns it as it was.
func (s *service[T, P]) Delete(ctx context.Context, id int64) (*T, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, rec); err != nil {
		return nil, err
	}
	zap.L().Info("record deleted", zap.String("resource", s.def.Name), zap.Int64("id", id))
	return rec, nil
}

func (s *service[T, P]) save(ctx context.Context, rec *T, input Fields) error {
	if err := Assign(rec, s.def.Schema, input); err != nil {
		return err
	}
	if s.def.BeforeSave != nil {
		return s.def.BeforeSave(ctx, rec)
	}
	return nil
}
