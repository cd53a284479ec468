package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/observable"
	"github.com/jsamuelsen11/go-catalog-service/internal/ports"
	"github.com/jsamuelsen11/go-catalog-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// captureLogger returns a JSON logger writing to buf.
func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// logRecords decodes every record written by a captureLogger whose msg is msg.
func logRecords(t *testing.T, buf *bytes.Buffer, msg string) []map[string]any {
	t.Helper()

	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		if rec["msg"] == msg {
			out = append(out, rec)
		}
	}
	return out
}

func itemDraft(id string) catalog.ItemDraft {
	return catalog.ItemDraft{
		UniqueID:  id,
		Title:     "Title " + id,
		ImagePath: "Assets/" + id + ".png",
		Content:   "content " + id,
	}
}

// newCatalog builds one group "g" with items a, b, c and top items capacity 2.
func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Build([]catalog.GroupSeed{{
		Group: catalog.GroupDraft{UniqueID: "g", Title: "Group", ImagePath: "Assets/g.png"},
		Items: []catalog.ItemDraft{itemDraft("a"), itemDraft("b"), itemDraft("c")},
	}}, catalog.WithTopItemsCapacity(2))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func newService(t *testing.T, images *mocks.MockImageResolver) *CatalogService {
	t.Helper()
	if images == nil {
		return NewCatalogService(newCatalog(t), nil, 2, discardLogger())
	}
	return NewCatalogService(newCatalog(t), images, 2, discardLogger())
}

func image(path string) catalog.Image {
	return catalog.Image{URL: "http://assets/" + path, ContentType: "image/png", Size: 10}
}

func ids(items []catalog.ItemSnapshot) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.UniqueID
	}
	return out
}

// --- NewCatalogService ---

func TestNewCatalogService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(newCatalog(t), nil, 0, nil)
	require.NotNil(t, svc.logger)
	assert.Equal(t, DefaultImageWorkers, svc.workers)
}

// --- reads ---

func TestCatalogService_ListGroups(t *testing.T) {
	t.Parallel()

	images := mocks.NewMockImageResolver(t)
	for _, p := range []string{"Assets/g.png", "Assets/a.png", "Assets/b.png"} {
		images.EXPECT().ResolveImage(mock.Anything, p).Return(image(p), nil).Once()
	}
	svc := newService(t, images)

	groups, err := svc.ListGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "g", g.UniqueID)
	assert.Equal(t, 3, g.ItemCount)
	assert.Nil(t, g.Items)
	assert.Equal(t, []string{"a", "b"}, ids(g.TopItems))
	require.NotNil(t, g.Image)
	assert.Equal(t, "http://assets/Assets/g.png", g.Image.URL)
	for _, it := range g.TopItems {
		require.NotNil(t, it.Image, it.UniqueID)
	}

	// Resolved images are memoized; the mock would fail on a second call.
	_, err = svc.ListGroups(context.Background())
	require.NoError(t, err)
}

func TestCatalogService_SharedPathResolvedOnce(t *testing.T) {
	t.Parallel()

	c, err := catalog.Build([]catalog.GroupSeed{{
		Group: catalog.GroupDraft{UniqueID: "g", Title: "Group"},
		Items: []catalog.ItemDraft{
			{UniqueID: "a", Title: "A", ImagePath: "Assets/shared.png"},
			{UniqueID: "b", Title: "B", ImagePath: "Assets/shared.png"},
		},
	}})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	images := mocks.NewMockImageResolver(t)
	images.EXPECT().ResolveImage(mock.Anything, "Assets/shared.png").
		Return(image("Assets/shared.png"), nil).Once()
	svc := NewCatalogService(c, images, 4, discardLogger())

	items, err := svc.TopItems(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		require.NotNil(t, it.Image)
		assert.Equal(t, "http://assets/Assets/shared.png", it.Image.URL)
	}
}

func TestCatalogService_ImageFailureDegrades(t *testing.T) {
	t.Parallel()

	images := mocks.NewMockImageResolver(t)
	images.EXPECT().ResolveImage(mock.Anything, "Assets/a.png").
		Return(catalog.Image{}, domain.ErrUnavailable).Twice()
	images.EXPECT().ResolveImage(mock.Anything, "Assets/b.png").
		Return(image("Assets/b.png"), nil).Once()
	svc := newService(t, images)

	for range 2 {
		items, err := svc.TopItems(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Nil(t, items[0].Image)
		assert.Equal(t, "Assets/a.png", items[0].ImagePath)
		require.NotNil(t, items[1].Image)
	}
}

func TestCatalogService_ImageFailuresLoggedOnce(t *testing.T) {
	t.Parallel()

	images := mocks.NewMockImageResolver(t)
	for _, p := range []string{"Assets/g.png", "Assets/a.png"} {
		images.EXPECT().ResolveImage(mock.Anything, p).
			Return(catalog.Image{}, fmt.Errorf("%s: %w", p, domain.ErrUnavailable)).Once()
	}
	images.EXPECT().ResolveImage(mock.Anything, "Assets/b.png").
		Return(image("Assets/b.png"), nil).Once()

	var buf bytes.Buffer
	svc := NewCatalogService(newCatalog(t), images, 2, captureLogger(&buf))

	_, err := svc.ListGroups(context.Background())
	require.NoError(t, err)

	recs := logRecords(t, &buf, "image resolution failed")
	require.Len(t, recs, 1)
	assert.Equal(t, "WARN", recs[0]["level"])
	assert.EqualValues(t, 2, recs[0]["failed"])
	assert.EqualValues(t, 3, recs[0]["total"])
	assert.Contains(t, recs[0]["error"], "Assets/g.png")
	assert.Contains(t, recs[0]["error"], "Assets/a.png")
}

func TestCatalogService_ListGroupsCanceled(t *testing.T) {
	t.Parallel()

	// No expectations: a canceled context never reaches the resolver.
	images := mocks.NewMockImageResolver(t)
	var buf bytes.Buffer
	svc := NewCatalogService(newCatalog(t), images, 2, captureLogger(&buf))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	groups, err := svc.ListGroups(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, groups)

	recs := logRecords(t, &buf, "catalog operation failed")
	require.Len(t, recs, 1)
	assert.Equal(t, "ListGroups", recs[0]["operation"])
	assert.Equal(t, "ERROR", recs[0]["level"])
}

func TestCatalogService_NoResolver(t *testing.T) {
	t.Parallel()

	svc := newService(t, nil)

	got, err := svc.GetGroup(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got.Items))
	assert.Equal(t, []string{"a", "b"}, ids(got.TopItems))
	for i, it := range got.Items {
		assert.Equal(t, i, it.Index)
		assert.Nil(t, it.Image)
		assert.NotEmpty(t, it.ImagePath)
	}
}

func TestCatalogService_GroupNotFound(t *testing.T) {
	t.Parallel()

	images := mocks.NewMockImageResolver(t)
	svc := newService(t, images)
	ctx := context.Background()

	_, err := svc.GetGroup(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.TopItems(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ProjectionEvents(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AppendItem(ctx, 1, itemDraft("x"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- mutations ---

func TestCatalogService_Mutations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		run       func(*CatalogService) (*mutationView, error)
		wantItem  string
		wantIndex int
		wantCount int
		wantTop   []string
	}{
		{
			name: "insert at front shifts top items",
			run: func(s *CatalogService) (*mutationView, error) {
				return view(s.InsertItem(context.Background(), 0, 0, itemDraft("x")))
			},
			wantItem: "x", wantIndex: 0, wantCount: 4, wantTop: []string{"x", "a"},
		},
		{
			name: "append beyond capacity leaves top items",
			run: func(s *CatalogService) (*mutationView, error) {
				return view(s.AppendItem(context.Background(), 0, itemDraft("x")))
			},
			wantItem: "x", wantIndex: 3, wantCount: 4, wantTop: []string{"a", "b"},
		},
		{
			name: "remove refills from source",
			run: func(s *CatalogService) (*mutationView, error) {
				return view(s.RemoveItem(context.Background(), 0, 0))
			},
			wantItem: "a", wantIndex: 0, wantCount: 2, wantTop: []string{"b", "c"},
		},
		{
			name: "move into window",
			run: func(s *CatalogService) (*mutationView, error) {
				return view(s.MoveItem(context.Background(), 0, 2, 0))
			},
			wantItem: "c", wantIndex: 0, wantCount: 3, wantTop: []string{"c", "a"},
		},
		{
			name: "replace inside window",
			run: func(s *CatalogService) (*mutationView, error) {
				return view(s.ReplaceItem(context.Background(), 0, 1, itemDraft("x")))
			},
			wantItem: "x", wantIndex: 1, wantCount: 3, wantTop: []string{"a", "x"},
		},
		{
			name: "reset",
			run: func(s *CatalogService) (*mutationView, error) {
				return view(s.ResetItems(context.Background(), 0, []catalog.ItemDraft{itemDraft("y")}))
			},
			wantIndex: -1, wantCount: 1, wantTop: []string{"y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newService(t, nil)

			got, err := tt.run(svc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantItem, got.item)
			assert.Equal(t, tt.wantIndex, got.index)
			assert.Equal(t, tt.wantCount, got.count)
			assert.Equal(t, tt.wantTop, got.top)

			// The read side agrees with the mutation result.
			top, err := svc.TopItems(context.Background(), 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTop, ids(top))
		})
	}
}

type mutationView struct {
	item  string
	index int
	count int
	top   []string
}

func view(res *ports.MutationResult, err error) (*mutationView, error) {
	if err != nil {
		return nil, err
	}
	v := &mutationView{index: -1, count: res.ItemCount, top: ids(res.TopItems)}
	if res.Item != nil {
		v.item = res.Item.UniqueID
		v.index = res.Item.Index
	}
	return v, nil
}

func TestCatalogService_MutationErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t, nil)

	_, err := svc.InsertItem(ctx, 0, 4, itemDraft("x"))
	assert.ErrorIs(t, err, observable.ErrIndexOutOfRange)

	_, err = svc.RemoveItem(ctx, 0, 3)
	assert.ErrorIs(t, err, observable.ErrIndexOutOfRange)

	_, err = svc.MoveItem(ctx, 0, 0, 3)
	assert.ErrorIs(t, err, observable.ErrIndexOutOfRange)

	_, err = svc.ReplaceItem(ctx, 0, -1, itemDraft("x"))
	assert.ErrorIs(t, err, observable.ErrIndexOutOfRange)

	_, err = svc.AppendItem(ctx, 0, catalog.ItemDraft{UniqueID: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.ResetItems(ctx, 0, []catalog.ItemDraft{itemDraft("y"), {}})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items[1].title")

	// Nothing above changed the group.
	got, err := svc.GetGroup(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got.Items))
}

func TestCatalogService_ProjectionEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t, nil)

	_, err := svc.InsertItem(ctx, 0, 0, itemDraft("x"))
	require.NoError(t, err)
	_, err = svc.AppendItem(ctx, 0, itemDraft("y"))
	require.NoError(t, err)

	events, err := svc.ProjectionEvents(ctx, 0)
	require.NoError(t, err)

	// Seeding resets, then the front insert adds x and evicts b.
	kinds := make([]string, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
		assert.Equal(t, i+1, e.Seq)
	}
	assert.Equal(t, []string{"reset", "insert", "remove"}, kinds)
	assert.Equal(t, []string{"a", "b"}, events[0].ItemIDs)
	assert.Equal(t, "x", events[1].ItemID)
	assert.Equal(t, "b", events[2].ItemID)
}

func TestCatalogService_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	images := mocks.NewMockImageResolver(t)
	images.EXPECT().ResolveImage(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, path string) (catalog.Image, error) {
			return image(path), nil
		}).Maybe()
	svc := newService(t, images)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers*2)

	for i := range workers {
		wg.Go(func() {
			if _, err := svc.AppendItem(ctx, 0, itemDraft(fmt.Sprintf("n%d", i))); err != nil {
				errs <- err
			}
		})
		wg.Go(func() {
			if _, err := svc.ListGroups(ctx); err != nil {
				errs <- err
			}
		})
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent call failed: %v", err)
	}

	got, err := svc.GetGroup(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 3+workers, got.ItemCount)
	assert.Equal(t, []string{"a", "b"}, ids(got.TopItems))
}

func TestIsCallerError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{domain.ErrNotFound, true},
		{&domain.ValidationError{}, true},
		{fmt.Errorf("wrapped: %w", observable.ErrIndexOutOfRange), true},
		{observable.ErrInvariantViolation, false},
		{errors.New("boom"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isCallerError(tt.err), "%v", tt.err)
	}
}
