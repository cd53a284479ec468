package catalog

import (
	"strings"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/observable"
)

// Item is a single entry of a group.
type Item struct {
	Common

	Content observable.Field[string]
	Group   observable.Field[*Group]
}

// ItemDraft carries the values a new item is created from.
type ItemDraft struct {
	UniqueID    string
	Title       string
	Subtitle    string
	ImagePath   string
	Description string
	Content     string
}

// Validate checks business rules for an item draft.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (d *ItemDraft) Validate() error {
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

// NewItem creates an item belonging to group.
func NewItem(d ItemDraft, group *Group) *Item {
	it := &Item{}
	it.init(d.UniqueID, d.Title, d.Subtitle, d.ImagePath, d.Description)
	it.Content = observable.NewField(&it.props, "Content", d.Content)
	it.Group = observable.NewField(&it.props, "Group", group)
	return it
}
