// Package assets resolves catalog image paths to image metadata. Resolver
// asks an asset server over HTTP; StaticResolver joins paths onto a fixed
// base URI without any I/O.
package assets

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
)

// translateStatus maps an asset server response status to a domain error.
// HEAD responses carry no body, so only the status line is available.
func translateStatus(path string, resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("asset %q: %w", path, domain.ErrNotFound)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("asset %q: %s: %w", path, http.StatusText(resp.StatusCode), domain.ErrUnavailable)

	default:
		return fmt.Errorf("asset %q: unexpected status %d", path, resp.StatusCode)
	}
}
