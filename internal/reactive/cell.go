// Package reactive provides the single-owner value container that the
// responsive observers publish through. A Cell holds the latest value and
// notifies subscribers when a Set actually changes it.
package reactive

import (
	"sort"
	"sync"
)

// Cell is a value container with change notification. The zero value is not
// usable; construct with NewCell.
type Cell[T comparable] struct {
	mu     sync.RWMutex
	value  T
	nextID uint64
	subs   map[uint64]func(T)
}

// NewCell returns a cell holding initial.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		subs:  make(map[uint64]func(T)),
	}
}

// Get returns the latest value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the held value. Subscribers run synchronously, in
// subscription order, only when the value differs from the previous one.
// It reports whether a change was published.
func (c *Cell[T]) Set(value T) bool {
	c.mu.Lock()
	if c.value == value {
		c.mu.Unlock()
		return false
	}
	c.value = value
	fns := c.snapshot()
	c.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
	return true
}

// Subscribe registers fn for future changes. The returned cancel func is
// idempotent.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (c *Cell[T]) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}

// snapshot must be called with c.mu held.
func (c *Cell[T]) snapshot() []func(T) {
	ids := make([]uint64, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, c.subs[id])
	}
	return fns
}
