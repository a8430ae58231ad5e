package sales

import (
	"context"

	"github.com/lumina-mfg/lumina/internal/shared"
	"github.com/lumina-mfg/lumina/internal/store"
)

// Repository abstracts sales order persistence.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id int64) (Order, error)
	Insert(ctx context.Context, order Order) (Order, error)
	Replace(ctx context.Context, id int64, order Order) (Order, error)
	Count(ctx context.Context) (int, error)
}

// MemoryRepository keeps orders in the in-process record store.
type MemoryRepository struct {
	orders *store.Collection[Order]
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders: store.NewCollection(
			func(o Order) int64 { return o.ID },
			func(o *Order, id int64) { o.ID = id },
		),
	}
}

// Seed inserts the given orders, assigning ids in order.
func (r *MemoryRepository) Seed(orders []Order) {
	for _, order := range orders {
		order.ID = 0
		r.orders.Insert(order)
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Order, error) {
	return r.orders.List(), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (Order, error) {
	order, ok := r.orders.Get(id)
	if !ok {
		return Order{}, shared.ErrNotFound
	}
	return order, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, order Order) (Order, error) {
	return r.orders.Insert(order), nil
}

func (r *MemoryRepository) Replace(ctx context.Context, id int64, order Order) (Order, error) {
	replaced, ok := r.orders.Replace(id, order)
	if !ok {
		return Order{}, shared.ErrNotFound
	}
	return replaced, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	return r.orders.Len(), nil
}
