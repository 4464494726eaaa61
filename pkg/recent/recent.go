package recent

import "sync"

// DefaultCapacity is the list size used when callers do not have a reason to
// pick their own.
const DefaultCapacity = 10

// Push returns list with item at the front, deduplicated by key and truncated
// to capacity. If an entry with the same key already exists it is removed
// first, so the moved entry carries the newly supplied payload rather than the
// stale one. A capacity of zero or less falls back to DefaultCapacity.
//
// Push is pure with respect to the input slice contents: the returned slice is
// freshly allocated and the input is never mutated.
func Push[T any](list []T, item T, key func(T) string, capacity int) []T {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	id := key(item)
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	for _, existing := range list {
		if key(existing) == id {
			continue
		}
		out = append(out, existing)
	}

	if len(out) > capacity {
		out = out[:capacity]
	}
	return out
}

// Tracker is a thread-safe most-recently-used list with a fixed capacity.
type Tracker[T any] struct {
	mu       sync.Mutex
	items    []T
	key      func(T) string
	capacity int
}

// NewTracker creates a tracker holding at most capacity items.
// The key function must be non-nil; capacity must be positive, otherwise it
// panics to fail fast on wiring mistakes.
func NewTracker[T any](key func(T) string, capacity int) *Tracker[T] {
	if key == nil {
		panic("recent: key function is required")
	}
	if capacity <= 0 {
		panic("recent: tracker capacity must be positive")
	}
	return &Tracker[T]{
		key:      key,
		capacity: capacity,
	}
}

// Add records item as the most recently used entry.
func (t *Tracker[T]) Add(item T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = Push(t.items, item, t.key, t.capacity)
}

// Items returns a copy of the list, newest first.
func (t *Tracker[T]) Items() []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]T, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of tracked items.
func (t *Tracker[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

// Clear removes all tracked items.
func (t *Tracker[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = nil
}
