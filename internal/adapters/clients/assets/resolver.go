package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
	"github.com/jsamuelsen11/go-catalog-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-catalog-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ImageResolver = (*Resolver)(nil)
	_ ports.HealthChecker = (*Resolver)(nil)
)

// Resolver is the outbound adapter for the asset server. It issues
// HEAD {base_url}/{path} and reads the image metadata from the response
// headers. The underlying [httpclient.Client] provides circuit breaking,
// retry, tracing, and metrics for every call.
type Resolver struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewResolver creates a Resolver that sends requests through client.
func NewResolver(client *httpclient.Client, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{client: client, logger: logger}
}

// ResolveImage returns the absolute URL, content type, and size of the
// asset at path. A missing asset is [domain.ErrNotFound]; server errors,
// throttling, and transport failures are [domain.ErrUnavailable].
func (r *Resolver) ResolveImage(ctx context.Context, path string) (catalog.Image, error) {
	if path == "" {
		return catalog.Image{}, fmt.Errorf("empty asset path: %w", domain.ErrNotFound)
	}

	req, err := r.client.NewRequest(ctx, http.MethodHead, path)
	if err != nil {
		return catalog.Image{}, fmt.Errorf("creating HEAD request for %q: %w", path, err)
	}
	target := req.URL.String()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil {
		// Exhausted retries on a retryable status still hand back the response.
		if resp != nil {
			return catalog.Image{}, translateStatus(path, resp)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return catalog.Image{}, fmt.Errorf("HEAD %s: %w", target, ctxErr)
		}
		r.logger.ErrorContext(ctx, "asset request failed",
			slog.String("url", target),
			slog.Any("error", err),
		)
		return catalog.Image{}, fmt.Errorf("HEAD %s: %w: %w", target, domain.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		translated := translateStatus(path, resp)
		if !errors.Is(translated, domain.ErrNotFound) {
			r.logger.ErrorContext(ctx, "unexpected asset status",
				slog.String("url", target),
				slog.Int("status", resp.StatusCode),
			)
		}
		return catalog.Image{}, translated
	}

	return catalog.Image{
		URL:         target,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        max(resp.ContentLength, 0),
	}, nil
}

// Name returns the identifier used with a [ports.HealthRegistry]. It matches
// the peer name the underlying client uses for tracing and metrics.
func (r *Resolver) Name() string {
	return r.client.Name()
}

// HealthCheck reports the asset server's availability from the circuit
// breaker state. No network call is made.
func (r *Resolver) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Resolver) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.Any("error", err),
		)
	}
}
