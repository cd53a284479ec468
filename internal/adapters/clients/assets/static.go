package assets

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
	"github.com/jsamuelsen11/go-catalog-service/internal/ports"
)

var _ ports.ImageResolver = StaticResolver{}

// StaticResolver resolves an image path by joining it onto a base URI such
// as "ms-appx:///". The content type is guessed from the file extension and
// the size is unknown (zero).
type StaticResolver struct {
	baseURI string
}

// NewStaticResolver creates a StaticResolver for baseURI. A trailing slash
// is added when missing.
func NewStaticResolver(baseURI string) StaticResolver {
	if baseURI != "" && !strings.HasSuffix(baseURI, "/") {
		baseURI += "/"
	}
	return StaticResolver{baseURI: baseURI}
}

// ResolveImage implements [ports.ImageResolver].
func (s StaticResolver) ResolveImage(ctx context.Context, p string) (catalog.Image, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Image{}, err
	}
	if p == "" {
		return catalog.Image{}, fmt.Errorf("empty asset path: %w", domain.ErrNotFound)
	}
	return catalog.Image{
		URL:         s.baseURI + strings.TrimLeft(p, "/"),
		ContentType: mime.TypeByExtension(path.Ext(p)),
	}, nil
}
