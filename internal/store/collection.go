// Package store holds the in-memory record collections that back every
// resource in the application. Each resource owns one Collection; the process
// lifetime is the persistence horizon.
package store

import "sync"

// Collection is a mutex-guarded map of records keyed by int64 id that
// preserves insertion order for iteration. The id accessors are supplied at
// construction so the collection stays agnostic of the record type.
type Collection[T any] struct {
	mu    sync.RWMutex
	items map[int64]T
	order []int64
	idOf  func(T) int64
	setID func(*T, int64)
}

// NewCollection builds an empty collection for records of type T.
func NewCollection[T any](idOf func(T) int64, setID func(*T, int64)) *Collection[T] {
	return &Collection[T]{
		items: make(map[int64]T),
		idOf:  idOf,
		setID: setID,
	}
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// Insert assigns the next id to the record and appends it. The id policy is
// 1 for an empty collection, otherwise max existing id + 1. Deleting the
// current maximum therefore frees its id for reuse; the counter is not
// monotonic.
func (c *Collection[T]) Insert(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextIDLocked()
	c.setID(&item, id)
	c.items[id] = item
	c.order = append(c.order, id)
	return item
}

// Replace swaps the stored record for the given id wholesale. Returns false
// when the id is absent.
func (c *Collection[T]) Replace(id int64, item T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		var zero T
		return zero, false
	}
	c.setID(&item, id)
	c.items[id] = item
	return item, true
}

// Remove deletes the record with the given id. Removing an absent id is a
// no-op, so the operation is idempotent.
func (c *Collection[T]) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) nextIDLocked() int64 {
	var max int64
	for id := range c.items {
		if id > max {
			max = id
		}
	}
	return max + 1
}
