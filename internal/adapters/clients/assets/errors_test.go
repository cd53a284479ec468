package assets

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
)

func TestTranslateStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "410 maps to ErrNotFound", statusCode: http.StatusGone, wantErr: domain.ErrNotFound},
		{name: "429 maps to ErrUnavailable", statusCode: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
		{name: "500 maps to ErrUnavailable", statusCode: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "503 maps to ErrUnavailable", statusCode: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := translateStatus("Assets/a.png", &http.Response{StatusCode: tt.statusCode})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("translateStatus() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTranslateStatus_Unexpected(t *testing.T) {
	t.Parallel()

	err := translateStatus("Assets/a.png", &http.Response{StatusCode: http.StatusForbidden})
	if err == nil {
		t.Fatal("translateStatus() = nil, want error")
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("translateStatus() = %v, want no sentinel", err)
	}
}
