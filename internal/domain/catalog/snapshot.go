package catalog

import "github.com/jsamuelsen11/go-catalog-service/internal/domain/observable"

// ItemSnapshot is a point-in-time copy of an item, detached from its cells.
type ItemSnapshot struct {
	Index       int
	UniqueID    string
	Title       string
	Subtitle    string
	Description string
	Content     string
	ImagePath   string
	Image       *Image
}

// GroupSnapshot is a point-in-time copy of a group. Items is only filled
// when requested; TopItems always is.
type GroupSnapshot struct {
	Index       int
	UniqueID    string
	Title       string
	Subtitle    string
	Description string
	ImagePath   string
	Image       *Image
	ItemCount   int
	Items       []ItemSnapshot
	TopItems    []ItemSnapshot
}

// ChangeRecord describes one recorded TopItems change by item identifiers.
type ChangeRecord struct {
	Seq       int
	Kind      string
	Index     int
	OldIndex  int
	ItemID    string
	OldItemID string
	ItemIDs   []string
}

// Snapshot copies the item as found at index.
func (it *Item) Snapshot(index int) ItemSnapshot {
	path, img := it.image()
	return ItemSnapshot{
		Index:       index,
		UniqueID:    it.UniqueID.Get(),
		Title:       it.Title.Get(),
		Subtitle:    it.Subtitle.Get(),
		Description: it.Description.Get(),
		Content:     it.Content.Get(),
		ImagePath:   path,
		Image:       img,
	}
}

// Snapshot copies the group as found at index.
func (g *Group) Snapshot(index int, withItems bool) GroupSnapshot {
	path, img := g.image()
	s := GroupSnapshot{
		Index:       index,
		UniqueID:    g.UniqueID.Get(),
		Title:       g.Title.Get(),
		Subtitle:    g.Subtitle.Get(),
		Description: g.Description.Get(),
		ImagePath:   path,
		Image:       img,
		ItemCount:   g.Items.Len(),
		TopItems:    snapshotItems(g.TopItems.Snapshot()),
	}
	if withItems {
		s.Items = snapshotItems(g.Items.Snapshot())
	}
	return s
}

// ChangeLog returns the retained TopItems changes as records, oldest first.
// Seq numbers count from 1 since the group was created.
func (g *Group) ChangeLog() []ChangeRecord {
	changes := g.Changes()
	first := g.ChangeTotal() - len(changes) + 1
	out := make([]ChangeRecord, len(changes))
	for i, ch := range changes {
		out[i] = newChangeRecord(first+i, ch)
	}
	return out
}

func newChangeRecord(seq int, ch observable.Change[*Item]) ChangeRecord {
	r := ChangeRecord{
		Seq:      seq,
		Kind:     ch.Kind.String(),
		Index:    ch.Index,
		OldIndex: ch.OldIndex,
		ItemID:   uniqueID(ch.Value),
	}
	r.OldItemID = uniqueID(ch.OldValue)
	if ch.Kind == observable.KindReset {
		r.ItemIDs = make([]string, len(ch.Items))
		for i, it := range ch.Items {
			r.ItemIDs[i] = uniqueID(it)
		}
	}
	return r
}

func uniqueID(it *Item) string {
	if it == nil {
		return ""
	}
	return it.UniqueID.Get()
}

func snapshotItems(items []*Item) []ItemSnapshot {
	out := make([]ItemSnapshot, len(items))
	for i, it := range items {
		out[i] = it.Snapshot(i)
	}
	return out
}
