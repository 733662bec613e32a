package repository

import (
	"context"
	"sync"
)

// BaseRepository is a generic in-memory table. Entities are stored by value
// copy and returned as copies, so callers never alias store state. IDs are
// assigned on first save.
type BaseRepository[T any, F any] struct {
	mu     sync.RWMutex
	rows   []*T
	nextID uint

	idOf    func(*T) uint
	setID   func(*T, uint)
	matches func(*T, F) bool
}

func NewBaseRepository[T any, F any](idOf func(*T) uint, setID func(*T, uint), matches func(*T, F) bool) *BaseRepository[T, F] {
	return &BaseRepository[T, F]{
		nextID:  1,
		idOf:    idOf,
		setID:   setID,
		matches: matches,
	}
}

// ByID retrieves an entity by ID, or nil when no row has it.
func (r *BaseRepository[T, F]) ByID(ctx context.Context, id uint) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, row := range r.rows {
		if r.idOf(row) == id {
			c := *row
			return &c, nil
		}
	}
	return nil, nil
}

// ByFilter retrieves entities matching the filter in insertion order. A
// non-positive limit means no limit.
func (r *BaseRepository[T, F]) ByFilter(ctx context.Context, filter F, limit, offset int) ([]*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*T
	skipped := 0
	for _, row := range r.rows {
		if !r.matches(row, filter) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		c := *row
		out = append(out, &c)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Save inserts the entity, assigning an ID if it has none, or replaces the
// stored row with the same ID.
func (r *BaseRepository[T, F]) Save(ctx context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.idOf(entity) == 0 {
		r.setID(entity, r.nextID)
		r.nextID++
	}

	c := *entity
	for i, row := range r.rows {
		if r.idOf(row) == r.idOf(entity) {
			r.rows[i] = &c
			return nil
		}
	}
	r.rows = append(r.rows, &c)
	return nil
}

// Count returns the number of entities matching the filter.
func (r *BaseRepository[T, F]) Count(ctx context.Context, filter F) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, row := range r.rows {
		if r.matches(row, filter) {
			n++
		}
	}
	return n, nil
}

// Exists reports whether any entity matches the filter.
func (r *BaseRepository[T, F]) Exists(ctx context.Context, filter F) (bool, error) {
	n, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// updateEach applies fn to every stored row matching pred, under the write
// lock. Used by repositories for partial updates.
func (r *BaseRepository[T, F]) updateEach(pred func(*T) bool, fn func(*T)) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := 0
	for _, row := range r.rows {
		if pred(row) {
			fn(row)
			updated++
		}
	}
	return updated
}
