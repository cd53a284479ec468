package assets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-catalog-service/internal/adapters/clients/assets"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
)

func TestStaticResolver_ResolveImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURI string
		path    string
		want    catalog.Image
	}{
		{
			name:    "app package URI",
			baseURI: "ms-appx:///",
			path:    "Assets/DarkGray.png",
			want:    catalog.Image{URL: "ms-appx:///Assets/DarkGray.png", ContentType: "image/png"},
		},
		{
			name:    "base without trailing slash",
			baseURI: "https://cdn.example.com/static",
			path:    "/Assets/a.jpg",
			want:    catalog.Image{URL: "https://cdn.example.com/static/Assets/a.jpg", ContentType: "image/jpeg"},
		},
		{
			name:    "unknown extension",
			baseURI: "ms-appx:///",
			path:    "Assets/blob",
			want:    catalog.Image{URL: "ms-appx:///Assets/blob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := assets.NewStaticResolver(tt.baseURI).ResolveImage(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStaticResolver_Errors(t *testing.T) {
	t.Parallel()

	r := assets.NewStaticResolver("ms-appx:///")

	_, err := r.ResolveImage(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.ResolveImage(ctx, "Assets/a.png")
	require.ErrorIs(t, err, context.Canceled)
}
