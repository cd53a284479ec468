package observable

import (
	"errors"
	"slices"
)

// Observer receives changes from a List or Projection. A non-nil error is
// returned to whoever triggered the mutation; it does not stop delivery to
// the remaining observers.
type Observer[T any] func(Change[T]) error

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	cancel func()
}

// Unsubscribe stops delivery to the observer. It is safe to call more than
// once and from inside the observer itself.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

type subscriber[T any] struct {
	id int
	fn Observer[T]
}

// observers is an ordered observer list shared by List and Projection.
type observers[T any] struct {
	nextID int
	subs   []subscriber[T]
}

func (o *observers[T]) subscribe(fn Observer[T]) *Subscription {
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})

	return &Subscription{cancel: func() {
		o.subs = slices.DeleteFunc(o.subs, func(s subscriber[T]) bool { return s.id == id })
	}}
}

// notify delivers ch to every observer registered when the call started and
// joins their errors.
func (o *observers[T]) notify(ch Change[T]) error {
	if len(o.subs) == 0 {
		return nil
	}

	var errs []error
	for _, s := range slices.Clone(o.subs) {
		if err := s.fn(ch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (o *observers[T]) len() int {
	return len(o.subs)
}
