package alerts

import (
	"context"

	"github.com/lumina-mfg/lumina/internal/shared"
	"github.com/lumina-mfg/lumina/internal/store"
)

// Repository abstracts alert persistence.
type Repository interface {
	List(ctx context.Context) ([]Alert, error)
	Get(ctx context.Context, id int64) (Alert, error)
	Replace(ctx context.Context, id int64, alert Alert) (Alert, error)
}

// MemoryRepository keeps alerts in the in-process record store.
type MemoryRepository struct {
	alerts *store.Collection[Alert]
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		alerts: store.NewCollection(
			func(a Alert) int64 { return a.ID },
			func(a *Alert, id int64) { a.ID = id },
		),
	}
}

// Seed inserts the given alerts, assigning ids in order.
func (r *MemoryRepository) Seed(alerts []Alert) {
	for _, alert := range alerts {
		alert.ID = 0
		r.alerts.Insert(alert)
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Alert, error) {
	return r.alerts.List(), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (Alert, error) {
	alert, ok := r.alerts.Get(id)
	if !ok {
		return Alert{}, shared.ErrNotFound
	}
	return alert, nil
}

func (r *MemoryRepository) Replace(ctx context.Context, id int64, alert Alert) (Alert, error) {
	replaced, ok := r.alerts.Replace(id, alert)
	if !ok {
		return Alert{}, shared.ErrNotFound
	}
	return replaced, nil
}
