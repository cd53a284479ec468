package observable

import (
	"fmt"
	"slices"
)

// Source is the read side of an observable sequence, as consumed by a
// Projection. Len and At reflect the sequence after the change currently
// being delivered.
type Source[T any] interface {
	Len() int
	At(index int) T
	Subscribe(fn Observer[T]) *Subscription
}

// Compile-time interface check.
var _ Source[int] = (*List[int])(nil)

// List is an ordered, mutable sequence that notifies observers after every
// structural mutation. The zero value is an empty list ready to use.
//
// Mutations return ErrIndexOutOfRange without touching the list when an
// index is invalid. Otherwise the mutation is applied and the resulting
// Change is delivered to every observer before the method returns; observer
// errors are joined into the returned error.
//
// A mutation attempted while a change is still being delivered is rejected
// with ErrInvariantViolation and leaves the list unchanged.
type List[T any] struct {
	items     []T
	observers observers[T]
	notifying bool
}

// NewList creates a list holding items, in order.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at index. It panics if index is out of range, like
// a slice index expression.
func (l *List[T]) At(index int) T {
	return l.items[index]
}

// Snapshot returns a copy of the elements.
func (l *List[T]) Snapshot() []T {
	return slices.Clone(l.items)
}

// Subscribe registers fn for every subsequent change.
func (l *List[T]) Subscribe(fn Observer[T]) *Subscription {
	return l.observers.subscribe(fn)
}

// Observers returns the number of registered observers.
func (l *List[T]) Observers() int {
	return l.observers.len()
}

// Insert places value at index, shifting later elements right. Valid indices
// are 0 through Len() inclusive.
func (l *List[T]) Insert(index int, value T) error {
	if err := l.checkIdle("insert"); err != nil {
		return err
	}
	if index < 0 || index > len(l.items) {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfRange, index, len(l.items))
	}

	l.items = slices.Insert(l.items, index, value)
	return l.notify(InsertChange(index, value))
}

// Append inserts value at the end of the list.
func (l *List[T]) Append(value T) error {
	return l.Insert(len(l.items), value)
}

// RemoveAt deletes the element at index and returns it.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if err := l.checkIdle("remove"); err != nil {
		var zero T
		return zero, err
	}
	if err := l.checkIndex("remove", index); err != nil {
		var zero T
		return zero, err
	}

	value := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return value, l.notify(RemoveChange(index, value))
}

// Move relocates the element at oldIndex so that it ends up at newIndex.
// Moving an element onto its own position is a no-op and emits nothing.
func (l *List[T]) Move(oldIndex, newIndex int) error {
	if err := l.checkIdle("move"); err != nil {
		return err
	}
	if err := l.checkIndex("move from", oldIndex); err != nil {
		return err
	}
	if err := l.checkIndex("move to", newIndex); err != nil {
		return err
	}
	if oldIndex == newIndex {
		return nil
	}

	value := l.items[oldIndex]
	l.items = slices.Delete(l.items, oldIndex, oldIndex+1)
	l.items = slices.Insert(l.items, newIndex, value)
	return l.notify(MoveChange(oldIndex, newIndex, value))
}

// Set overwrites the element at index.
func (l *List[T]) Set(index int, value T) error {
	if err := l.checkIdle("replace"); err != nil {
		return err
	}
	if err := l.checkIndex("replace", index); err != nil {
		return err
	}

	old := l.items[index]
	l.items[index] = value
	return l.notify(ReplaceChange(index, old, value))
}

// Reset replaces the whole contents with items.
func (l *List[T]) Reset(items []T) error {
	if err := l.checkIdle("reset"); err != nil {
		return err
	}
	l.items = slices.Clone(items)
	return l.notify(ResetChange(l.items))
}

// Clear removes every element. It is reported as a reset.
func (l *List[T]) Clear() error {
	return l.Reset(nil)
}

func (l *List[T]) checkIndex(op string, index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %s %d, length %d", ErrIndexOutOfRange, op, index, len(l.items))
	}
	return nil
}

// notify delivers ch with nested mutations locked out until every observer
// has returned.
func (l *List[T]) notify(ch Change[T]) error {
	l.notifying = true
	defer func() { l.notifying = false }()
	return l.observers.notify(ch)
}

func (l *List[T]) checkIdle(op string) error {
	if l.notifying {
		return fmt.Errorf("%w: %s during change notification", ErrInvariantViolation, op)
	}
	return nil
}
