package observable

import "slices"

// History keeps the most recent changes delivered to it, oldest first. Its
// Record method is an Observer.
type History[T any] struct {
	entries []Change[T]
	size    int
	total   int
}

// NewHistory creates a history holding at most size changes. Sizes below one
// are treated as one.
func NewHistory[T any](size int) *History[T] {
	if size < 1 {
		size = 1
	}
	return &History[T]{
		entries: make([]Change[T], 0, size),
		size:    size,
	}
}

// Record appends ch, evicting the oldest entry when full. It never fails.
func (h *History[T]) Record(ch Change[T]) error {
	h.total++
	if len(h.entries) < h.size {
		h.entries = append(h.entries, ch)
		return nil
	}
	copy(h.entries, h.entries[1:])
	h.entries[len(h.entries)-1] = ch
	return nil
}

// Entries returns a copy of the retained changes, oldest first.
func (h *History[T]) Entries() []Change[T] {
	return slices.Clone(h.entries)
}

// Total returns how many changes were recorded, including evicted ones.
func (h *History[T]) Total() int {
	return h.total
}
