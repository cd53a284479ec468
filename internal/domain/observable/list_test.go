package observable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain/observable"
)

func collect(l *observable.List[string]) *[]observable.Change[string] {
	var got []observable.Change[string]
	l.Subscribe(func(ch observable.Change[string]) error {
		got = append(got, ch)
		return nil
	})
	return &got
}

func TestList_Mutations(t *testing.T) {
	t.Parallel()

	l := observable.NewList("a", "b", "c")
	changes := collect(l)

	require.NoError(t, l.Insert(1, "x"))
	require.NoError(t, l.Append("d"))
	removed, err := l.RemoveAt(0)
	require.NoError(t, err)
	require.NoError(t, l.Move(0, 3))
	require.NoError(t, l.Set(0, "B"))

	assert.Equal(t, "a", removed)
	assert.Equal(t, []string{"B", "c", "d", "x"}, l.Snapshot())
	assert.Equal(t, []observable.Change[string]{
		observable.InsertChange(1, "x"),
		observable.InsertChange(4, "d"),
		observable.RemoveChange(0, "a"),
		observable.MoveChange(0, 3, "x"),
		observable.ReplaceChange(0, "b", "B"),
	}, *changes)
}

func TestList_ObserversSeePostMutationState(t *testing.T) {
	t.Parallel()

	l := observable.NewList("a", "b", "c")
	var seen []string
	l.Subscribe(func(ch observable.Change[string]) error {
		seen = append(seen, l.At(ch.Index))
		return nil
	})

	require.NoError(t, l.Move(0, 2))
	require.NoError(t, l.Insert(0, "z"))

	assert.Equal(t, []string{"a", "z"}, seen)
}

func TestList_RejectsBadIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   func(l *observable.List[string]) error
	}{
		{"insert negative", func(l *observable.List[string]) error { return l.Insert(-1, "x") }},
		{"insert past end", func(l *observable.List[string]) error { return l.Insert(3, "x") }},
		{"remove past end", func(l *observable.List[string]) error { _, err := l.RemoveAt(2); return err }},
		{"move from negative", func(l *observable.List[string]) error { return l.Move(-1, 0) }},
		{"move to past end", func(l *observable.List[string]) error { return l.Move(0, 2) }},
		{"set past end", func(l *observable.List[string]) error { return l.Set(2, "x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := observable.NewList("a", "b")
			changes := collect(l)

			require.ErrorIs(t, tt.op(l), observable.ErrIndexOutOfRange)
			assert.Equal(t, []string{"a", "b"}, l.Snapshot())
			assert.Empty(t, *changes)
		})
	}
}

func TestList_MoveOntoSelfIsSilent(t *testing.T) {
	t.Parallel()

	l := observable.NewList("a", "b")
	changes := collect(l)

	require.NoError(t, l.Move(1, 1))
	assert.Empty(t, *changes)
}

func TestList_ResetCopiesInput(t *testing.T) {
	t.Parallel()

	l := observable.NewList[string]()
	changes := collect(l)
	items := []string{"a", "b"}

	require.NoError(t, l.Reset(items))
	items[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, l.Snapshot())
	require.Len(t, *changes, 1)
	assert.Equal(t, []string{"a", "b"}, (*changes)[0].Items)
}

func TestList_UnsubscribeDuringNotify(t *testing.T) {
	t.Parallel()

	l := observable.NewList[string]()
	calls := 0
	var sub *observable.Subscription
	sub = l.Subscribe(func(observable.Change[string]) error {
		calls++
		sub.Unsubscribe()
		return nil
	})
	other := collect(l)

	require.NoError(t, l.Append("a"))
	require.NoError(t, l.Append("b"))

	assert.Equal(t, 1, calls)
	assert.Len(t, *other, 2)
}

func TestList_RejectsMutationDuringNotify(t *testing.T) {
	t.Parallel()

	l := observable.NewList("a", "b")

	var nested []error
	sub := l.Subscribe(func(observable.Change[string]) error {
		_, err := l.RemoveAt(0)
		nested = append(nested, err,
			l.Insert(0, "y"),
			l.Move(0, 1),
			l.Set(0, "y"),
			l.Reset(nil),
		)
		return nil
	})

	require.NoError(t, l.Append("c"))

	require.Len(t, nested, 5)
	for i, err := range nested {
		assert.ErrorIs(t, err, observable.ErrInvariantViolation, "nested mutation %d", i)
	}
	assert.Equal(t, []string{"a", "b", "c"}, l.Snapshot())

	// Mutations are accepted again once delivery has finished.
	sub.Unsubscribe()
	require.NoError(t, l.Set(0, "A"))
	assert.Equal(t, []string{"A", "b", "c"}, l.Snapshot())
}

func TestList_JoinsObserverErrors(t *testing.T) {
	t.Parallel()

	errA, errB := errors.New("a"), errors.New("b")
	l := observable.NewList[string]()
	l.Subscribe(func(observable.Change[string]) error { return errA })
	l.Subscribe(func(observable.Change[string]) error { return errB })

	err := l.Append("x")

	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	assert.Equal(t, 1, l.Len(), "mutation is applied even when observers fail")
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "insert", observable.KindInsert.String())
	assert.Equal(t, "reset", observable.KindReset.String())
	assert.Equal(t, "kind(0)", observable.Kind(0).String())
	assert.Equal(t, "move 1->3", observable.MoveChange(1, 3, "x").String())
	assert.Equal(t, "remove 2", observable.RemoveChange(2, "x").String())
}
