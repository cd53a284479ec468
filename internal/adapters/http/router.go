// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-catalog-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-catalog-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. A nil metrics handler
// leaves /metrics unregistered.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	healthHandler *handlers.HealthHandler,
	metrics http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
	})

	// Operational endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Group reads.
		r.Get("/groups", catalogHandler.ListGroups)
		r.Get("/groups/{groupIndex}", catalogHandler.GetGroup)
		r.Get("/groups/{groupIndex}/top-items", catalogHandler.TopItems)
		r.Get("/groups/{groupIndex}/top-items/events", catalogHandler.ProjectionEvents)

		// Positional item mutations.
		r.Post("/groups/{groupIndex}/items", catalogHandler.InsertItem)
		r.Put("/groups/{groupIndex}/items", catalogHandler.ResetItems)
		r.Put("/groups/{groupIndex}/items/{itemIndex}", catalogHandler.ReplaceItem)
		r.Delete("/groups/{groupIndex}/items/{itemIndex}", catalogHandler.RemoveItem)
		r.Post("/groups/{groupIndex}/items/{itemIndex}/move", catalogHandler.MoveItem)
	})

	return r
}
