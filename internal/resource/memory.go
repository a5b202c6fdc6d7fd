package resource

import (
	"context"
	"sync"
	"time"

	"github.com/google/btree"
)

// MemoryRepository keeps records in an ordered in-process tree. It serves
// the memory driver and tests. Callers always receive copies.
type MemoryRepository[T any, P Record[T]] struct {
	mu     sync.RWMutex
	tree   *btree.BTreeG[P]
	nextID int64
	now    func() time.Time
}

func NewMemoryRepository[T any, P Record[T]]() *MemoryRepository[T, P] {
	return &MemoryRepository[T, P]{
		tree: btree.NewG(16, func(a, b P) bool { return a.Base().ID < b.Base().ID }),
		now:  time.Now,
	}
}

func clone[T any, P Record[T]](rec P) P {
	c := *rec
	return P(&c)
}

func (r *MemoryRepository[T, P]) key(id int64) P {
	var rec T
	p := P(&rec)
	p.Base().ID = id
	return p
}

func (r *MemoryRepository[T, P]) List(ctx context.Context) ([]*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := make([]*T, 0, r.tree.Len())
	r.tree.Ascend(func(item P) bool {
		recs = append(recs, (*T)(clone[T](item)))
		return true
	})
	return recs, nil
}

func (r *MemoryRepository[T, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.tree.Get(r.key(id))
	if !ok {
		return nil, ErrNotFound
	}
	return (*T)(clone[T](item)), nil
}

func (r *MemoryRepository[T, P]) Create(ctx context.Context, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	base := P(rec).Base()
	base.ID = r.nextID
	base.CreatedAt = r.now().UTC()
	base.UpdatedAt = base.CreatedAt
	r.tree.ReplaceOrInsert(clone[T](P(rec)))
	return nil
}

func (r *MemoryRepository[T, P]) Update(ctx context.Context, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	base := P(rec).Base()
	if _, ok := r.tree.Get(r.key(base.ID)); !ok {
		return ErrNotFound
	}
	base.UpdatedAt = r.now().UTC()
	r.tree.ReplaceOrInsert(clone[T](P(rec)))
	return nil
}

func (r *MemoryRepository[T, P]) Delete(ctx context.Context, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tree.Delete(r.key(P(rec).Base().ID)); !ok {
		return ErrNotFound
	}
	return nil
}
