// Package guard serializes access to in-memory state shared by concurrent
// requests.
package guard

import "sync"

// SafeRef guards a mutable value with a sync.RWMutex. Read runs under the
// shared lock so readers do not block each other; Update and Write run under
// the exclusive lock so each write, including every notification it triggers,
// completes before the next write or read begins.
//
// The value passed to fn must not be retained after fn returns.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Update calls fn with the value under a write lock and returns its error.
func (r *SafeRef[T]) Update(fn func(T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.val)
}

// Read calls fn under a read lock and returns its result.
func Read[T, R any](r *SafeRef[T], fn func(T) (R, error)) (R, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(r.val)
}

// Write calls fn under a write lock and returns its result.
func Write[T, R any](r *SafeRef[T], fn func(T) (R, error)) (R, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.val)
}
