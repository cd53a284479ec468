package assets_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-catalog-service/internal/adapters/clients/assets"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
	"github.com/jsamuelsen11/go-catalog-service/internal/platform/config"
	"github.com/jsamuelsen11/go-catalog-service/internal/platform/httpclient"
)

// newTestResolver creates a Resolver against baseURL with a single attempt
// per call and a breaker that trips after maxFailures.
func newTestResolver(t *testing.T, baseURL string, maxFailures int) *assets.Resolver {
	t.Helper()

	cfg := &config.AssetsConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   maxFailures,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)

	return assets.NewResolver(httpclient.New(cfg, "assets-test", nil, logger), logger)
}

func TestResolver_ResolveImage(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead || r.URL.Path != "/Assets/Puzzles/light bulb.png" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", "2048")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	r := newTestResolver(t, ts.URL, 5)
	img, err := r.ResolveImage(context.Background(), "Assets/Puzzles/light bulb.png")
	require.NoError(t, err)

	assert.Equal(t, catalog.Image{
		URL:         ts.URL + "/Assets/Puzzles/light%20bulb.png",
		ContentType: "image/png",
		Size:        2048,
	}, img)
}

func TestResolver_ResolveImageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "missing asset", status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "throttled", status: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			r := newTestResolver(t, ts.URL, 5)
			_, err := r.ResolveImage(context.Background(), "Assets/a.png")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolver_EmptyPath(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, "http://127.0.0.1:1", 5)
	_, err := r.ResolveImage(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolver_TransportErrorUnavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	r := newTestResolver(t, url, 5)
	_, err := r.ResolveImage(context.Background(), "Assets/a.png")
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestResolver_ContextCanceled(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestResolver(t, ts.URL, 5)
	_, err := r.ResolveImage(ctx, "Assets/a.png")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, domain.ErrUnavailable))
}

func TestResolver_HealthFollowsBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	r := newTestResolver(t, ts.URL, 2)
	assert.Equal(t, "assets-test", r.Name())
	require.NoError(t, r.HealthCheck(context.Background()))

	for range 2 {
		_, err := r.ResolveImage(context.Background(), "Assets/a.png")
		require.ErrorIs(t, err, domain.ErrUnavailable)
	}

	// The breaker is open: calls fail fast without reaching the server.
	_, err := r.ResolveImage(context.Background(), "Assets/a.png")
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, int32(2), calls.Load())

	err = r.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
}
