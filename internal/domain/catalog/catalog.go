// Package catalog holds the grouped content model: groups of items whose
// fields publish property changes, each group exposing its full item list
// and a bounded "top items" projection of it for overview pages.
//
// Groups and items are addressed by position. Structural changes go through
// the group's Items list; the TopItems projection follows automatically.
package catalog

import (
	"fmt"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/observable"
)

// Catalog is the ordered collection of all groups.
type Catalog struct {
	Groups *observable.List[*Group]
}

// New creates a catalog holding groups, in order.
func New(groups ...*Group) *Catalog {
	return &Catalog{Groups: observable.NewList(groups...)}
}

// Build creates a catalog from seeds, applying opts to every group.
func Build(seeds []GroupSeed, opts ...Option) (*Catalog, error) {
	groups := make([]*Group, 0, len(seeds))
	for i := range seeds {
		g, err := NewGroup(seeds[i].Group, opts...)
		if err != nil {
			closeAll(groups)
			return nil, fmt.Errorf("building group %d: %w", i, err)
		}
		if err := g.ResetItems(seeds[i].Items); err != nil {
			closeAll(append(groups, g))
			return nil, fmt.Errorf("seeding group %d items: %w", i, err)
		}
		groups = append(groups, g)
	}
	return New(groups...), nil
}

// Group returns the group at index, or domain.ErrNotFound.
func (c *Catalog) Group(index int) (*Group, error) {
	if index < 0 || index >= c.Groups.Len() {
		return nil, fmt.Errorf("group %d of %d: %w", index, c.Groups.Len(), domain.ErrNotFound)
	}
	return c.Groups.At(index), nil
}

// Close detaches every group's projection.
func (c *Catalog) Close() {
	closeAll(c.Groups.Snapshot())
}

func closeAll(groups []*Group) {
	for _, g := range groups {
		g.Close()
	}
}

// GroupSeed is the initial content of one group.
type GroupSeed struct {
	Group GroupDraft
	Items []ItemDraft
}
