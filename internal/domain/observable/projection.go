package observable

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultCapacity is the number of elements a grouped overview shows per
// group: it fills complete grid columns for 1, 2, 3, 4, or 6 rows.
const DefaultCapacity = 12

// Projection is a bounded prefix view of a Source. After every processed
// change it holds exactly source[0 .. min(source.Len(), Capacity())), in
// order.
//
// The view is never rebuilt from scratch except on a reset; each change is
// applied in O(capacity) time regardless of the source's length. Each
// primitive mutation of the view (insert, remove, move, replace, reset) is
// published to the projection's own observers, so a consumer can mirror the
// view by replaying them in order.
//
// A Projection is not safe for concurrent use. See the package docs.
type Projection[T any] struct {
	source    Source[T]
	capacity  int
	items     []T
	observers observers[T]
	sub       *Subscription
}

// Attach builds a projection of source capped at capacity and subscribes it
// to the source's changes. The view starts as the current prefix of source.
// It returns ErrInvalidCapacity when capacity is not positive.
func Attach[T any](source Source[T], capacity int) (*Projection[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	p := &Projection[T]{
		source:   source,
		capacity: capacity,
		items:    make([]T, 0, capacity),
	}
	p.fill()
	p.sub = source.Subscribe(p.Apply)

	return p, nil
}

// Detach stops following the source. The view keeps its last contents.
func (p *Projection[T]) Detach() {
	p.sub.Unsubscribe()
}

// Capacity returns the maximum number of elements the view holds.
func (p *Projection[T]) Capacity() int {
	return p.capacity
}

// Len returns the current number of elements in the view.
func (p *Projection[T]) Len() int {
	return len(p.items)
}

// At returns the view element at index. It panics if index is out of range.
func (p *Projection[T]) At(index int) T {
	return p.items[index]
}

// Snapshot returns a copy of the view.
func (p *Projection[T]) Snapshot() []T {
	return slices.Clone(p.items)
}

// Subscribe registers fn for every subsequent mutation of the view.
func (p *Projection[T]) Subscribe(fn Observer[T]) *Subscription {
	return p.observers.subscribe(fn)
}

// Apply processes one source change. It is the observer Attach registers,
// and may also be fed changes directly by a caller that relays them from
// elsewhere. The source must already reflect ch.
func (p *Projection[T]) Apply(ch Change[T]) error {
	switch ch.Kind {
	case KindInsert:
		return p.OnInsert(ch.Index, ch.Value)
	case KindRemove:
		return p.OnRemove(ch.Index)
	case KindMove:
		return p.OnMove(ch.OldIndex, ch.Index)
	case KindReplace:
		return p.OnReplace(ch.Index, ch.Value)
	case KindReset:
		return p.OnReset()
	default:
		return fmt.Errorf("%w: unknown change kind %s", ErrInvariantViolation, ch.Kind)
	}
}

// OnInsert handles value inserted into the source at index.
func (p *Projection[T]) OnInsert(index int, value T) error {
	n := p.source.Len()
	if err := p.check("insert", index, n, n-1); err != nil {
		return err
	}
	if index >= p.capacity {
		return nil
	}

	errs := []error{p.insertAt(index, value)}
	if len(p.items) > p.capacity {
		errs = append(errs, p.removeAt(p.capacity))
	}
	return errors.Join(errs...)
}

// OnRemove handles the source element at index being removed.
func (p *Projection[T]) OnRemove(index int) error {
	n := p.source.Len()
	if err := p.check("remove", index, n+1, n+1); err != nil {
		return err
	}
	if index >= p.capacity {
		return nil
	}

	errs := []error{p.removeAt(index)}
	errs = append(errs, p.refill())
	return errors.Join(errs...)
}

// OnMove handles a source element relocating from oldIndex to newIndex.
func (p *Projection[T]) OnMove(oldIndex, newIndex int) error {
	n := p.source.Len()
	if err := p.check("move from", oldIndex, n, n); err != nil {
		return err
	}
	if err := p.check("move to", newIndex, n, n); err != nil {
		return err
	}

	inOld, inNew := oldIndex < p.capacity, newIndex < p.capacity
	switch {
	case inOld && inNew:
		if oldIndex == newIndex {
			return nil
		}
		return p.move(oldIndex, newIndex)

	case inOld:
		// Leaving the window: whatever slid into the last slot refills it.
		return errors.Join(p.removeAt(oldIndex), p.refill())

	case inNew:
		// Entering the window: the former last element is pushed out.
		errs := []error{p.insertAt(newIndex, p.source.At(newIndex))}
		if len(p.items) > p.capacity {
			errs = append(errs, p.removeAt(p.capacity))
		}
		return errors.Join(errs...)

	default:
		return nil
	}
}

// OnReplace handles the source element at index being overwritten by value.
func (p *Projection[T]) OnReplace(index int, value T) error {
	n := p.source.Len()
	if err := p.check("replace", index, n, n); err != nil {
		return err
	}
	if index >= p.capacity {
		return nil
	}

	old := p.items[index]
	p.items[index] = value
	return p.observers.notify(ReplaceChange(index, old, value))
}

// OnReset rebuilds the view from the source's current contents.
func (p *Projection[T]) OnReset() error {
	clear(p.items)
	p.items = p.items[:0]
	p.fill()
	return p.observers.notify(ResetChange(p.items))
}

// check validates an incoming index against limit (exclusive) and the view
// length against the source length the event implies before the mutation.
func (p *Projection[T]) check(op string, index, limit, sourceLenBefore int) error {
	if index < 0 || index >= limit {
		return fmt.Errorf("%w: %s index %d outside [0, %d)", ErrInvariantViolation, op, index, limit)
	}
	if want := min(sourceLenBefore, p.capacity); len(p.items) != want {
		return fmt.Errorf("%w: %s with view length %d, want %d for source length %d",
			ErrInvariantViolation, op, len(p.items), want, sourceLenBefore)
	}
	return nil
}

// fill appends source elements until the view is full or the source is
// exhausted. It does not notify.
func (p *Projection[T]) fill() {
	for len(p.items) < p.capacity && len(p.items) < p.source.Len() {
		p.items = append(p.items, p.source.At(len(p.items)))
	}
}

// refill appends source[capacity-1] after a removal if the source still has
// enough elements to fill the view.
func (p *Projection[T]) refill() error {
	if p.source.Len() < p.capacity {
		return nil
	}
	return p.insertAt(len(p.items), p.source.At(p.capacity-1))
}

func (p *Projection[T]) insertAt(index int, value T) error {
	p.items = slices.Insert(p.items, index, value)
	return p.observers.notify(InsertChange(index, value))
}

func (p *Projection[T]) removeAt(index int) error {
	value := p.items[index]
	p.items = slices.Delete(p.items, index, index+1)
	return p.observers.notify(RemoveChange(index, value))
}

func (p *Projection[T]) move(oldIndex, newIndex int) error {
	value := p.items[oldIndex]
	p.items = slices.Delete(p.items, oldIndex, oldIndex+1)
	p.items = slices.Insert(p.items, newIndex, value)
	return p.observers.notify(MoveChange(oldIndex, newIndex, value))
}
