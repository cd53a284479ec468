package ports

import (
	"context"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
)

// CatalogService defines the service port for catalog operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Groups and items are addressed by their position; every structural change
// to a group's items is reflected in its top items before the call returns.
type CatalogService interface {
	// ListGroups returns every group with its top items but without its
	// full item list.
	ListGroups(ctx context.Context) ([]catalog.GroupSnapshot, error)

	// GetGroup returns a single group with all of its items.
	// Returns domain.ErrNotFound if groupIndex is out of range.
	GetGroup(ctx context.Context, groupIndex int) (*catalog.GroupSnapshot, error)

	// TopItems returns the bounded top-items view of a group.
	// Returns domain.ErrNotFound if groupIndex is out of range.
	TopItems(ctx context.Context, groupIndex int) ([]catalog.ItemSnapshot, error)

	// InsertItem creates an item at index (0..item count).
	// Returns domain.ErrValidation if the draft fails validation and
	// observable.ErrIndexOutOfRange if index is out of range.
	InsertItem(ctx context.Context, groupIndex, index int, item catalog.ItemDraft) (*MutationResult, error)

	// AppendItem creates an item after the last one.
	AppendItem(ctx context.Context, groupIndex int, item catalog.ItemDraft) (*MutationResult, error)

	// RemoveItem deletes the item at itemIndex. The result carries the
	// removed item.
	RemoveItem(ctx context.Context, groupIndex, itemIndex int) (*MutationResult, error)

	// MoveItem moves the item at from to position to. The result carries
	// the moved item at its new position.
	MoveItem(ctx context.Context, groupIndex, from, to int) (*MutationResult, error)

	// ReplaceItem puts a new item in place of the one at itemIndex. The
	// result carries the new item.
	ReplaceItem(ctx context.Context, groupIndex, itemIndex int, item catalog.ItemDraft) (*MutationResult, error)

	// ResetItems replaces all items of a group at once.
	// Returns domain.ErrValidation with per-item field errors if any draft
	// is invalid; the group is left untouched in that case.
	ResetItems(ctx context.Context, groupIndex int, items []catalog.ItemDraft) (*MutationResult, error)

	// ProjectionEvents returns the most recent top-items changes of a group,
	// oldest first.
	ProjectionEvents(ctx context.Context, groupIndex int) ([]catalog.ChangeRecord, error)
}

// MutationResult describes a group right after a structural change.
// Item is the item the change applied to and is nil for resets.
type MutationResult struct {
	GroupIndex int
	Item       *catalog.ItemSnapshot
	ItemCount  int
	TopItems   []catalog.ItemSnapshot
}
