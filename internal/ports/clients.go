package ports

import (
	"context"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
)

// ImageResolver defines the client port that turns a catalog image path
// (e.g. "Assets/puzzle.png") into a resolved image reference.
// Implemented by the assets adapter; called by the application layer.
type ImageResolver interface {
	// ResolveImage returns the image for path.
	// Returns domain.ErrNotFound if the asset does not exist and
	// domain.ErrUnavailable if the asset source cannot be reached.
	ResolveImage(ctx context.Context, path string) (catalog.Image, error)
}
