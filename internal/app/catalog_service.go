// Package app provides application services that orchestrate use cases by
// coordinating between the domain model and infrastructure through port
// interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/go-catalog-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-catalog-service/internal/app/guard"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/observable"
	"github.com/jsamuelsen11/go-catalog-service/internal/ports"
)

// Compile-time check that CatalogService implements ports.CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// DefaultImageWorkers bounds concurrent image resolutions when the caller
// does not configure a positive worker count.
const DefaultImageWorkers = 4

// CatalogService implements ports.CatalogService on top of an in-memory
// catalog. Mutations hold the catalog's write lock for the whole source
// change, so every group's top items are settled before the next request
// observes the catalog. Reads hold the read lock and resolve pending images
// through the ImageResolver port before taking their snapshot.
type CatalogService struct {
	catalog *guard.SafeRef[*catalog.Catalog]
	images  ports.ImageResolver
	workers int
	logger  *slog.Logger
}

// NewCatalogService creates a CatalogService over c. images may be nil, in
// which case images are reported by path only. workers bounds concurrent
// image resolutions per read.
func NewCatalogService(c *catalog.Catalog, images ports.ImageResolver, workers int, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if workers <= 0 {
		workers = DefaultImageWorkers
	}
	return &CatalogService{
		catalog: guard.NewRef(c),
		images:  images,
		workers: workers,
		logger:  logger,
	}
}

// ListGroups returns every group with its top items resolved.
func (s *CatalogService) ListGroups(ctx context.Context) ([]catalog.GroupSnapshot, error) {
	s.logger.InfoContext(ctx, "listing groups")

	err := s.warmImages(ctx, func(c *catalog.Catalog) ([]*catalog.Common, error) {
		var out []*catalog.Common
		for _, g := range c.Groups.Snapshot() {
			out = append(out, &g.Common)
			out = appendItems(out, g.TopItems.Snapshot())
		}
		return out, nil
	})
	if err != nil {
		s.logFailure(ctx, "ListGroups", err)
		return nil, err
	}

	groups, err := guard.Read(s.catalog, func(c *catalog.Catalog) ([]catalog.GroupSnapshot, error) {
		groups := c.Groups.Snapshot()
		out := make([]catalog.GroupSnapshot, len(groups))
		for i, g := range groups {
			out[i] = g.Snapshot(i, false)
		}
		return out, nil
	})
	if err != nil {
		s.logFailure(ctx, "ListGroups", err)
		return nil, err
	}
	return groups, nil
}

// GetGroup returns the group at groupIndex with all of its items.
func (s *CatalogService) GetGroup(ctx context.Context, groupIndex int) (*catalog.GroupSnapshot, error) {
	s.logger.InfoContext(ctx, "fetching group", slog.Int("group_index", groupIndex))

	err := s.warmImages(ctx, func(c *catalog.Catalog) ([]*catalog.Common, error) {
		g, err := c.Group(groupIndex)
		if err != nil {
			return nil, err
		}
		return appendItems([]*catalog.Common{&g.Common}, g.Items.Snapshot()), nil
	})
	if err != nil {
		s.logFailure(ctx, "GetGroup", err, slog.Int("group_index", groupIndex))
		return nil, err
	}

	snap, err := guard.Read(s.catalog, func(c *catalog.Catalog) (*catalog.GroupSnapshot, error) {
		g, err := c.Group(groupIndex)
		if err != nil {
			return nil, err
		}
		snap := g.Snapshot(groupIndex, true)
		return &snap, nil
	})
	if err != nil {
		s.logFailure(ctx, "GetGroup", err, slog.Int("group_index", groupIndex))
		return nil, err
	}
	return snap, nil
}

// TopItems returns the top items of the group at groupIndex.
func (s *CatalogService) TopItems(ctx context.Context, groupIndex int) ([]catalog.ItemSnapshot, error) {
	s.logger.InfoContext(ctx, "fetching top items", slog.Int("group_index", groupIndex))

	err := s.warmImages(ctx, func(c *catalog.Catalog) ([]*catalog.Common, error) {
		g, err := c.Group(groupIndex)
		if err != nil {
			return nil, err
		}
		return appendItems(nil, g.TopItems.Snapshot()), nil
	})
	if err != nil {
		s.logFailure(ctx, "TopItems", err, slog.Int("group_index", groupIndex))
		return nil, err
	}

	items, err := guard.Read(s.catalog, func(c *catalog.Catalog) ([]catalog.ItemSnapshot, error) {
		g, err := c.Group(groupIndex)
		if err != nil {
			return nil, err
		}
		return g.Snapshot(groupIndex, false).TopItems, nil
	})
	if err != nil {
		s.logFailure(ctx, "TopItems", err, slog.Int("group_index", groupIndex))
		return nil, err
	}
	return items, nil
}

// InsertItem inserts a new item at index.
func (s *CatalogService) InsertItem(ctx context.Context, groupIndex, index int, item catalog.ItemDraft) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "inserting item",
		slog.Int("group_index", groupIndex),
		slog.Int("index", index),
		slog.String("unique_id", item.UniqueID),
	)

	return s.mutate(ctx, "InsertItem", groupIndex, func(g *catalog.Group) (int, error) {
		if _, err := g.InsertItem(index, item); err != nil {
			return 0, err
		}
		return index, nil
	}, slog.Int("index", index))
}

// AppendItem adds a new item after the last one.
func (s *CatalogService) AppendItem(ctx context.Context, groupIndex int, item catalog.ItemDraft) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "appending item",
		slog.Int("group_index", groupIndex),
		slog.String("unique_id", item.UniqueID),
	)

	return s.mutate(ctx, "AppendItem", groupIndex, func(g *catalog.Group) (int, error) {
		index := g.Items.Len()
		if _, err := g.AppendItem(item); err != nil {
			return 0, err
		}
		return index, nil
	})
}

// RemoveItem deletes the item at itemIndex and reports it in the result.
func (s *CatalogService) RemoveItem(ctx context.Context, groupIndex, itemIndex int) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "removing item",
		slog.Int("group_index", groupIndex),
		slog.Int("item_index", itemIndex),
	)

	var removed catalog.ItemSnapshot
	res, err := s.mutate(ctx, "RemoveItem", groupIndex, func(g *catalog.Group) (int, error) {
		it, err := g.Items.RemoveAt(itemIndex)
		if err != nil {
			return 0, err
		}
		removed = it.Snapshot(itemIndex)
		return noItem, nil
	}, slog.Int("item_index", itemIndex))
	if err != nil {
		return nil, err
	}

	res.Item = &removed
	return res, nil
}

// MoveItem moves the item at from to position to.
func (s *CatalogService) MoveItem(ctx context.Context, groupIndex, from, to int) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "moving item",
		slog.Int("group_index", groupIndex),
		slog.Int("from", from),
		slog.Int("to", to),
	)

	return s.mutate(ctx, "MoveItem", groupIndex, func(g *catalog.Group) (int, error) {
		if err := g.Items.Move(from, to); err != nil {
			return 0, err
		}
		return to, nil
	}, slog.Int("from", from), slog.Int("to", to))
}

// ReplaceItem puts a new item in place of the one at itemIndex.
func (s *CatalogService) ReplaceItem(ctx context.Context, groupIndex, itemIndex int, item catalog.ItemDraft) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "replacing item",
		slog.Int("group_index", groupIndex),
		slog.Int("item_index", itemIndex),
		slog.String("unique_id", item.UniqueID),
	)

	return s.mutate(ctx, "ReplaceItem", groupIndex, func(g *catalog.Group) (int, error) {
		if _, err := g.ReplaceItem(itemIndex, item); err != nil {
			return 0, err
		}
		return itemIndex, nil
	}, slog.Int("item_index", itemIndex))
}

// ResetItems replaces every item of the group at groupIndex.
func (s *CatalogService) ResetItems(ctx context.Context, groupIndex int, items []catalog.ItemDraft) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "resetting items",
		slog.Int("group_index", groupIndex),
		slog.Int("count", len(items)),
	)

	return s.mutate(ctx, "ResetItems", groupIndex, func(g *catalog.Group) (int, error) {
		return noItem, g.ResetItems(items)
	})
}

// ProjectionEvents returns the recorded top-items changes of a group.
func (s *CatalogService) ProjectionEvents(ctx context.Context, groupIndex int) ([]catalog.ChangeRecord, error) {
	s.logger.InfoContext(ctx, "fetching projection events", slog.Int("group_index", groupIndex))

	records, err := guard.Read(s.catalog, func(c *catalog.Catalog) ([]catalog.ChangeRecord, error) {
		g, err := c.Group(groupIndex)
		if err != nil {
			return nil, err
		}
		return g.ChangeLog(), nil
	})
	if err != nil {
		s.logFailure(ctx, "ProjectionEvents", err, slog.Int("group_index", groupIndex))
		return nil, err
	}
	return records, nil
}

// noItem tells mutate that the change has no single resulting item.
const noItem = -1

// mutate runs fn on the group at groupIndex under the write lock. fn returns
// the index of the item the result should carry, or noItem.
func (s *CatalogService) mutate(
	ctx context.Context,
	operation string,
	groupIndex int,
	fn func(g *catalog.Group) (int, error),
	attrs ...any,
) (*ports.MutationResult, error) {
	res, err := guard.Write(s.catalog, func(c *catalog.Catalog) (*ports.MutationResult, error) {
		g, err := c.Group(groupIndex)
		if err != nil {
			return nil, err
		}

		itemIndex, err := fn(g)
		if err != nil {
			return nil, err
		}

		snap := g.Snapshot(groupIndex, false)
		res := &ports.MutationResult{
			GroupIndex: groupIndex,
			ItemCount:  snap.ItemCount,
			TopItems:   snap.TopItems,
		}
		if itemIndex != noItem {
			item := g.Items.At(itemIndex).Snapshot(itemIndex)
			res.Item = &item
		}
		return res, nil
	})
	if err != nil {
		s.logFailure(ctx, operation, err, append([]any{slog.Int("group_index", groupIndex)}, attrs...)...)
		return nil, err
	}
	return res, nil
}

// pendingImage is a lazy image cell waiting on path.
type pendingImage struct {
	cell *observable.Lazy[catalog.Image]
	path string
}

// warmImages resolves the pending images of the records selected by pick.
// Paths are collected under the read lock, resolved concurrently without
// holding any lock, and stored under the write lock. A record repointed in
// the meantime keeps its new path. Resolution failures are logged together and
// left unresolved so a later read retries them, unless ctx is done, in which
// case its error is returned.
func (s *CatalogService) warmImages(ctx context.Context, pick func(*catalog.Catalog) ([]*catalog.Common, error)) error {
	pending, err := guard.Read(s.catalog, func(c *catalog.Catalog) ([]pendingImage, error) {
		records, err := pick(c)
		if err != nil {
			return nil, err
		}
		var out []pendingImage
		for _, r := range records {
			if path, ok := r.Image.Pending(); ok {
				out = append(out, pendingImage{cell: &r.Image, path: path})
			}
		}
		return out, nil
	})
	if err != nil || len(pending) == 0 || s.images == nil {
		return err
	}

	paths := uniquePaths(pending)
	results := fanout.Run(ctx, s.workers, paths, s.images.ResolveImage)

	resolved := make(map[string]catalog.Image, len(paths))
	for i, r := range results {
		if r.Err == nil {
			resolved[paths[i]] = r.Value
		}
	}
	if err := fanout.Errors(results); err != nil {
		s.logger.WarnContext(ctx, "image resolution failed",
			slog.String("operation", "ResolveImage"),
			slog.Int("failed", len(paths)-len(resolved)),
			slog.Int("total", len(paths)),
			slog.Any("error", err),
		)
		// An abandoned request gets no partial result.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	if len(resolved) == 0 {
		return nil
	}

	return s.catalog.Update(func(*catalog.Catalog) error {
		for _, p := range pending {
			if img, ok := resolved[p.path]; ok {
				p.cell.Store(p.path, img)
			}
		}
		return nil
	})
}

// logFailure logs a failed operation. Caller mistakes are logged at warn
// level, everything else at error level.
func (s *CatalogService) logFailure(ctx context.Context, operation string, err error, attrs ...any) {
	level := slog.LevelError
	if isCallerError(err) {
		level = slog.LevelWarn
	}
	attrs = append([]any{slog.String("operation", operation)}, attrs...)
	attrs = append(attrs, slog.Any("error", err))
	s.logger.Log(ctx, level, "catalog operation failed", attrs...)
}

func isCallerError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, observable.ErrIndexOutOfRange)
}

func appendItems(out []*catalog.Common, items []*catalog.Item) []*catalog.Common {
	for _, it := range items {
		out = append(out, &it.Common)
	}
	return out
}

func uniquePaths(pending []pendingImage) []string {
	seen := make(map[string]struct{}, len(pending))
	paths := make([]string, 0, len(pending))
	for _, p := range pending {
		if _, ok := seen[p.path]; ok {
			continue
		}
		seen[p.path] = struct{}{}
		paths = append(paths, p.path)
	}
	return paths
}
