package inventory

import (
	"context"

	"github.com/lumina-mfg/lumina/internal/shared"
	"github.com/lumina-mfg/lumina/internal/store"
)

// Repository abstracts item persistence so a durable implementation can be
// swapped in without touching the service.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	Insert(ctx context.Context, item Item) (Item, error)
	Replace(ctx context.Context, id int64, item Item) (Item, error)
	Remove(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// MemoryRepository keeps items in the in-process record store.
type MemoryRepository struct {
	items *store.Collection[Item]
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: store.NewCollection(
			func(i Item) int64 { return i.ID },
			func(i *Item, id int64) { i.ID = id },
		),
	}
}

// Seed inserts the given items, assigning ids in order.
func (r *MemoryRepository) Seed(items []Item) {
	for _, item := range items {
		item.ID = 0
		r.items.Insert(item)
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Item, error) {
	return r.items.List(), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (Item, error) {
	item, ok := r.items.Get(id)
	if !ok {
		return Item{}, shared.ErrNotFound
	}
	return item, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, item Item) (Item, error) {
	return r.items.Insert(item), nil
}

func (r *MemoryRepository) Replace(ctx context.Context, id int64, item Item) (Item, error) {
	replaced, ok := r.items.Replace(id, item)
	if !ok {
		return Item{}, shared.ErrNotFound
	}
	return replaced, nil
}

func (r *MemoryRepository) Remove(ctx context.Context, id int64) error {
	r.items.Remove(id)
	return nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	return r.items.Len(), nil
}
