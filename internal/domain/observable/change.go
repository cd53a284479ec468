package observable

import (
	"fmt"
	"slices"
)

// Kind identifies the shape of a Change.
type Kind int

// Change kinds.
const (
	KindInsert Kind = iota + 1
	KindRemove
	KindMove
	KindReplace
	KindReset
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindRemove:
		return "remove"
	case KindMove:
		return "move"
	case KindReplace:
		return "replace"
	case KindReset:
		return "reset"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Change describes a single atomic mutation of an ordered sequence. Indices
// refer to the sequence after the mutation has been applied.
//
//	Insert:  Value now sits at Index.
//	Remove:  Value was removed from Index.
//	Move:    Value moved from OldIndex to Index.
//	Replace: Value replaced OldValue at Index.
//	Reset:   the contents were replaced wholesale by Items.
type Change[T any] struct {
	Kind     Kind
	Index    int
	OldIndex int
	Value    T
	OldValue T
	Items    []T
}

// String renders the change without its values.
func (c Change[T]) String() string {
	switch c.Kind {
	case KindMove:
		return fmt.Sprintf("move %d->%d", c.OldIndex, c.Index)
	case KindReset:
		return fmt.Sprintf("reset (%d items)", len(c.Items))
	default:
		return fmt.Sprintf("%s %d", c.Kind, c.Index)
	}
}

// InsertChange describes value inserted at index.
func InsertChange[T any](index int, value T) Change[T] {
	return Change[T]{Kind: KindInsert, Index: index, Value: value}
}

// RemoveChange describes value removed from index.
func RemoveChange[T any](index int, value T) Change[T] {
	return Change[T]{Kind: KindRemove, Index: index, Value: value}
}

// MoveChange describes value relocated from oldIndex to newIndex.
func MoveChange[T any](oldIndex, newIndex int, value T) Change[T] {
	return Change[T]{Kind: KindMove, Index: newIndex, OldIndex: oldIndex, Value: value}
}

// ReplaceChange describes oldValue at index overwritten with value.
func ReplaceChange[T any](index int, oldValue, value T) Change[T] {
	return Change[T]{Kind: KindReplace, Index: index, Value: value, OldValue: oldValue}
}

// ResetChange describes the contents replaced by items. The slice is copied.
func ResetChange[T any](items []T) Change[T] {
	return Change[T]{Kind: KindReset, Items: slices.Clone(items)}
}
