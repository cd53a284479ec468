package observable

// Lazy is a memoized derived value. It holds either an unresolved path or a
// resolved value. Callers resolve the path reported by Pending and memoize the
// result with Store; the cell is invalidated explicitly by SetPath.
type Lazy[V any] struct {
	name     string
	path     string
	value    V
	resolved bool
	notifier *PropertyNotifier
}

// NewLazy creates an unresolved cell named name for path.
func NewLazy[V any](notifier *PropertyNotifier, name, path string) Lazy[V] {
	return Lazy[V]{name: name, path: path, notifier: notifier}
}

// Path returns the path the value will be (or was) resolved from. It is empty
// when the value was assigned directly with Set.
func (l *Lazy[V]) Path() string {
	return l.path
}

// Resolved returns the memoized value, if any.
func (l *Lazy[V]) Resolved() (V, bool) {
	return l.value, l.resolved
}

// Pending returns the path still waiting to be resolved. ok is false when the
// value is already resolved or there is nothing to resolve.
func (l *Lazy[V]) Pending() (path string, ok bool) {
	if l.resolved || l.path == "" {
		return "", false
	}
	return l.path, true
}

// Store memoizes v as the resolution of path. It is a no-op returning false
// when the cell was repointed since path was read from Pending, which lets a
// resolution computed elsewhere be stored after the fact.
func (l *Lazy[V]) Store(path string, v V) bool {
	if l.resolved || l.path != path || path == "" {
		return false
	}
	l.value = v
	l.resolved = true
	return true
}

// SetPath invalidates the cell and repoints it at path.
func (l *Lazy[V]) SetPath(path string) {
	var zero V
	l.path = path
	l.value = zero
	l.resolved = false
	l.notifier.NotifyPropertyChanged(l.name)
}

// Set assigns v directly, discarding any pending path.
func (l *Lazy[V]) Set(v V) {
	l.path = ""
	l.value = v
	l.resolved = true
	l.notifier.NotifyPropertyChanged(l.name)
}
