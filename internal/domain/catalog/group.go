package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/observable"
)

// DefaultHistorySize is the number of top-items changes a group retains.
const DefaultHistorySize = 64

// Group is a titled collection of items. Items is the authoritative list;
// TopItems always holds its first TopItems.Capacity() elements.
type Group struct {
	Common

	Items    *observable.List[*Item]
	TopItems *observable.Projection[*Item]

	history *observable.History[*Item]
	subs    []*observable.Subscription
}

// GroupDraft carries the values a new group is created from.
type GroupDraft struct {
	UniqueID    string
	Title       string
	Subtitle    string
	ImagePath   string
	Description string
}

// Validate checks business rules for a group draft.
func (d *GroupDraft) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(d.UniqueID) == "" {
		fields["unique_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Option configures NewGroup.
type Option func(*groupOptions)

type groupOptions struct {
	capacity    int
	historySize int
	observers   []observable.Observer[*Item]
}

// WithTopItemsCapacity sets how many items TopItems holds.
// Defaults to observable.DefaultCapacity.
func WithTopItemsCapacity(n int) Option {
	return func(o *groupOptions) {
		o.capacity = n
	}
}

// WithHistorySize sets how many TopItems changes the group retains.
// Defaults to DefaultHistorySize.
func WithHistorySize(n int) Option {
	return func(o *groupOptions) {
		o.historySize = n
	}
}

// WithTopItemsObserver subscribes fn to the TopItems projection of every
// group built with this option.
func WithTopItemsObserver(fn observable.Observer[*Item]) Option {
	return func(o *groupOptions) {
		o.observers = append(o.observers, fn)
	}
}

// NewGroup creates an empty group. It fails if the draft is invalid or the
// configured capacity is not positive.
func NewGroup(d GroupDraft, opts ...Option) (*Group, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	o := groupOptions{capacity: observable.DefaultCapacity, historySize: DefaultHistorySize}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Group{Items: observable.NewList[*Item]()}
	g.init(d.UniqueID, d.Title, d.Subtitle, d.ImagePath, d.Description)

	top, err := observable.Attach[*Item](g.Items, o.capacity)
	if err != nil {
		return nil, fmt.Errorf("attaching top items: %w", err)
	}
	g.TopItems = top

	g.history = observable.NewHistory[*Item](o.historySize)
	g.subs = append(g.subs, top.Subscribe(g.history.Record))
	for _, fn := range o.observers {
		g.subs = append(g.subs, top.Subscribe(fn))
	}

	return g, nil
}

// Close detaches TopItems from Items and drops the group's own observers.
func (g *Group) Close() {
	for _, s := range g.subs {
		s.Unsubscribe()
	}
	g.subs = nil
	g.TopItems.Detach()
}

// InsertItem validates d, creates an item from it and inserts it at index.
func (g *Group) InsertItem(index int, d ItemDraft) (*Item, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	it := NewItem(d, g)
	if err := g.Items.Insert(index, it); err != nil {
		return nil, err
	}
	return it, nil
}

// AppendItem creates an item from d and appends it.
func (g *Group) AppendItem(d ItemDraft) (*Item, error) {
	return g.InsertItem(g.Items.Len(), d)
}

// ReplaceItem creates an item from d and puts it in place of the item at
// index. The replaced item is returned.
func (g *Group) ReplaceItem(index int, d ItemDraft) (*Item, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if index < 0 || index >= g.Items.Len() {
		return nil, fmt.Errorf("%w: replace %d, length %d", observable.ErrIndexOutOfRange, index, g.Items.Len())
	}
	old := g.Items.At(index)
	if err := g.Items.Set(index, NewItem(d, g)); err != nil {
		return old, err
	}
	return old, nil
}

// ResetItems replaces every item with ones created from drafts.
func (g *Group) ResetItems(drafts []ItemDraft) error {
	verr := &domain.ValidationError{}
	for i := range drafts {
		var fieldErr *domain.ValidationError
		if err := drafts[i].Validate(); errors.As(err, &fieldErr) {
			verr.Merge(fmt.Sprintf("items[%d].", i), fieldErr)
		}
	}
	if len(verr.Fields) > 0 {
		return verr
	}

	items := make([]*Item, len(drafts))
	for i := range drafts {
		items[i] = NewItem(drafts[i], g)
	}
	return g.Items.Reset(items)
}

// Changes returns the retained TopItems changes, oldest first.
func (g *Group) Changes() []observable.Change[*Item] {
	return g.history.Entries()
}

// ChangeTotal returns how many TopItems changes occurred since creation.
func (g *Group) ChangeTotal() int {
	return g.history.Total()
}
