package production

import (
	"context"

	"github.com/lumina-mfg/lumina/internal/shared"
	"github.com/lumina-mfg/lumina/internal/store"
)

// Repository abstracts production line persistence.
type Repository interface {
	List(ctx context.Context) ([]Line, error)
	Get(ctx context.Context, id int64) (Line, error)
	Insert(ctx context.Context, line Line) (Line, error)
	Replace(ctx context.Context, id int64, line Line) (Line, error)
	Count(ctx context.Context) (int, error)
}

// MemoryRepository keeps lines in the in-process record store.
type MemoryRepository struct {
	lines *store.Collection[Line]
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		lines: store.NewCollection(
			func(l Line) int64 { return l.ID },
			func(l *Line, id int64) { l.ID = id },
		),
	}
}

// Seed inserts the given lines, assigning ids in order.
func (r *MemoryRepository) Seed(lines []Line) {
	for _, line := range lines {
		line.ID = 0
		r.lines.Insert(line)
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Line, error) {
	return r.lines.List(), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (Line, error) {
	line, ok := r.lines.Get(id)
	if !ok {
		return Line{}, shared.ErrNotFound
	}
	return line, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, line Line) (Line, error) {
	return r.lines.Insert(line), nil
}

func (r *MemoryRepository) Replace(ctx context.Context, id int64, line Line) (Line, error) {
	replaced, ok := r.lines.Replace(id, line)
	if !ok {
		return Line{}, shared.ErrNotFound
	}
	return replaced, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	return r.lines.Len(), nil
}
