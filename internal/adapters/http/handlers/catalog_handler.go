// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-catalog-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-catalog-service/internal/ports"
)

const (
	paramGroupIndex = "groupIndex"
	paramItemIndex  = "itemIndex"
)

// CatalogHandler handles HTTP requests for groups, their items, and their
// top items.
type CatalogHandler struct {
	svc ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler with the given service port.
func NewCatalogHandler(svc ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListGroups handles GET /api/v1/groups.
func (h *CatalogHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListGroups(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGroupListResponse(groups))
}

// GetGroup handles GET /api/v1/groups/{groupIndex}.
func (h *CatalogHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	gi, err := parseIndex(r, paramGroupIndex)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	g, err := h.svc.GetGroup(r.Context(), gi)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGroupResponse(g))
}

// TopItems handles GET /api/v1/groups/{groupIndex}/top-items.
func (h *CatalogHandler) TopItems(w http.ResponseWriter, r *http.Request) {
	gi, err := parseIndex(r, paramGroupIndex)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.TopItems(r.Context(), gi)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTopItemsResponse(gi, items))
}

// ProjectionEvents handles GET /api/v1/groups/{groupIndex}/top-items/events.
func (h *CatalogHandler) ProjectionEvents(w http.ResponseWriter, r *http.Request) {
	gi, err := parseIndex(r, paramGroupIndex)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	records, err := h.svc.ProjectionEvents(r.Context(), gi)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToChangeListResponse(gi, records))
}

// InsertItem handles POST /api/v1/groups/{groupIndex}/items. The item is
// inserted at the body's index, or appended when index is absent.
func (h *CatalogHandler) InsertItem(w http.ResponseWriter, r *http.Request) {
	gi, err := parseIndex(r, paramGroupIndex)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var res *ports.MutationResult
	if req.Index != nil {
		res, err = h.svc.InsertItem(r.Context(), gi, *req.Index, req.ToDraft())
	} else {
		res, err = h.svc.AppendItem(r.Context(), gi, req.ToDraft())
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMutationResponse(res))
}

// ReplaceItem handles PUT /api/v1/groups/{groupIndex}/items/{itemIndex}.
func (h *CatalogHandler) ReplaceItem(w http.ResponseWriter, r *http.Request) {
	gi, ii, ok := parseItemPath(w, r)
	if !ok {
		return
	}

	var req dto.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.ReplaceItem(r.Context(), gi, ii, req.ToDraft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMutationResponse(res))
}

// RemoveItem handles DELETE /api/v1/groups/{groupIndex}/items/{itemIndex}.
// The response carries the removed item.
func (h *CatalogHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	gi, ii, ok := parseItemPath(w, r)
	if !ok {
		return
	}

	res, err := h.svc.RemoveItem(r.Context(), gi, ii)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMutationResponse(res))
}

// MoveItem handles POST /api/v1/groups/{groupIndex}/items/{itemIndex}/move.
func (h *CatalogHandler) MoveItem(w http.ResponseWriter, r *http.Request) {
	gi, ii, ok := parseItemPath(w, r)
	if !ok {
		return
	}

	var req dto.MoveItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.MoveItem(r.Context(), gi, ii, *req.To)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMutationResponse(res))
}

// ResetItems handles PUT /api/v1/groups/{groupIndex}/items.
func (h *CatalogHandler) ResetItems(w http.ResponseWriter, r *http.Request) {
	gi, err := parseIndex(r, paramGroupIndex)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ResetItemsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.ResetItems(r.Context(), gi, req.ToDrafts())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMutationResponse(res))
}

// parseItemPath extracts the group and item indices. On failure it writes
// an error response and returns false.
func parseItemPath(w http.ResponseWriter, r *http.Request) (groupIndex, itemIndex int, ok bool) {
	groupIndex, err := parseIndex(r, paramGroupIndex)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	itemIndex, err = parseIndex(r, paramItemIndex)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	return groupIndex, itemIndex, true
}
