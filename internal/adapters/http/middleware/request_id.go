package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-catalog-service/internal/platform/httpclient"
)

const headerRequestID = "X-Request-ID"

// maxIDLength bounds incoming request and correlation IDs.
const maxIDLength = 128

// requestIDKey is the context key for storing request IDs within the middleware
// package. httpclient keeps its own key so it does not import this package.
type requestIDKey struct{}

// WithRequestID returns a new context with the given request ID stored in it.
// It also stores the ID via httpclient.WithRequestID so that outbound asset
// requests carry the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns middleware that extracts or generates an X-Request-ID for
// each request. A well-formed incoming header is reused; anything else is
// replaced with a new UUID v4. The ID is stored in the request context and
// set as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := acceptID(r.Header.Get(headerRequestID))
			if !ok {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// acceptID reports whether an incoming ID header can be propagated as is:
// non-empty, at most maxIDLength bytes, printable ASCII without spaces.
// IDs end up in logs and outbound headers.
func acceptID(id string) (string, bool) {
	if id == "" || len(id) > maxIDLength {
		return "", false
	}
	for i := range len(id) {
		if c := id[i]; c <= ' ' || c > '~' {
			return "", false
		}
	}
	return id, true
}
