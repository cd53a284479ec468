package observable

// PropertyNotifier tells listeners which named property of a record changed.
// Records embed one and hand it to their Field and Lazy cells. The zero
// value is ready to use.
type PropertyNotifier struct {
	nextID    int
	listeners []propertyListener
}

type propertyListener struct {
	id int
	fn func(name string)
}

// OnPropertyChanged registers fn to be called with the property name after
// each effective write.
func (n *PropertyNotifier) OnPropertyChanged(fn func(name string)) *Subscription {
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, propertyListener{id: id, fn: fn})

	return &Subscription{cancel: func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}}
}

// NotifyPropertyChanged calls every listener with name.
func (n *PropertyNotifier) NotifyPropertyChanged(name string) {
	if n == nil {
		return
	}
	for _, l := range n.listeners {
		l.fn(name)
	}
}

// Field is a named value cell that notifies its record's listeners when a
// write changes the value. Values are compared with ==, so pointer fields
// compare by identity and scalar fields by value.
type Field[T comparable] struct {
	name     string
	value    T
	notifier *PropertyNotifier
}

// NewField creates a field named name holding initial. A nil notifier
// produces a field that never notifies.
func NewField[T comparable](notifier *PropertyNotifier, name string, initial T) Field[T] {
	return Field[T]{name: name, value: initial, notifier: notifier}
}

// Name returns the property name reported to listeners.
func (f *Field[T]) Name() string {
	return f.name
}

// Get returns the current value.
func (f *Field[T]) Get() T {
	return f.value
}

// Set stores v and reports whether the value changed. Listeners are only
// notified on change.
func (f *Field[T]) Set(v T) bool {
	if f.value == v {
		return false
	}
	f.value = v
	f.notifier.NotifyPropertyChanged(f.name)
	return true
}
