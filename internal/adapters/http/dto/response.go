// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
	"github.com/jsamuelsen11/go-catalog-service/internal/ports"
)

// ImageResponse represents a resolved image in HTTP responses.
type ImageResponse struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

// ItemResponse represents a single item in HTTP responses.
type ItemResponse struct {
	Index       int            `json:"index"`
	UniqueID    string         `json:"unique_id"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	ImagePath   string         `json:"image_path,omitempty"`
	Image       *ImageResponse `json:"image,omitempty"`
}

// GroupResponse represents a single group in HTTP responses. Items is only
// present when the full group was requested.
type GroupResponse struct {
	Index       int            `json:"index"`
	UniqueID    string         `json:"unique_id"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Description string         `json:"description"`
	ImagePath   string         `json:"image_path,omitempty"`
	Image       *ImageResponse `json:"image,omitempty"`
	ItemCount   int            `json:"item_count"`
	Items       []ItemResponse `json:"items,omitempty"`
	TopItems    []ItemResponse `json:"top_items"`
}

// GroupListResponse represents a list of groups in HTTP responses.
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
	Count  int             `json:"count"`
}

// TopItemsResponse represents the top items of one group.
type TopItemsResponse struct {
	GroupIndex int            `json:"group_index"`
	Items      []ItemResponse `json:"items"`
	Count      int            `json:"count"`
}

// MutationResponse represents a group right after a structural change.
type MutationResponse struct {
	GroupIndex int            `json:"group_index"`
	Item       *ItemResponse  `json:"item,omitempty"`
	ItemCount  int            `json:"item_count"`
	TopItems   []ItemResponse `json:"top_items"`
}

// ChangeResponse represents one recorded top-items change. Index is absent
// for resets, OldIndex for everything but moves.
type ChangeResponse struct {
	Seq       int      `json:"seq"`
	Kind      string   `json:"kind"`
	Index     *int     `json:"index,omitempty"`
	OldIndex  *int     `json:"old_index,omitempty"`
	ItemID    string   `json:"item_id,omitempty"`
	OldItemID string   `json:"old_item_id,omitempty"`
	ItemIDs   []string `json:"item_ids,omitempty"`
}

// ChangeListResponse represents the recorded top-items changes of a group.
type ChangeListResponse struct {
	GroupIndex int              `json:"group_index"`
	Events     []ChangeResponse `json:"events"`
	Count      int              `json:"count"`
}

// ToItemResponse converts an item snapshot to an HTTP response DTO.
func ToItemResponse(it *catalog.ItemSnapshot) ItemResponse {
	return ItemResponse{
		Index:       it.Index,
		UniqueID:    it.UniqueID,
		Title:       it.Title,
		Subtitle:    it.Subtitle,
		Description: it.Description,
		Content:     it.Content,
		ImagePath:   it.ImagePath,
		Image:       toImageResponse(it.Image),
	}
}

// ToGroupResponse converts a group snapshot to an HTTP response DTO.
func ToGroupResponse(g *catalog.GroupSnapshot) GroupResponse {
	resp := GroupResponse{
		Index:       g.Index,
		UniqueID:    g.UniqueID,
		Title:       g.Title,
		Subtitle:    g.Subtitle,
		Description: g.Description,
		ImagePath:   g.ImagePath,
		Image:       toImageResponse(g.Image),
		ItemCount:   g.ItemCount,
		TopItems:    toItemResponses(g.TopItems),
	}
	if g.Items != nil {
		resp.Items = toItemResponses(g.Items)
	}
	return resp
}

// ToGroupListResponse converts group snapshots to an HTTP list response DTO.
func ToGroupListResponse(groups []catalog.GroupSnapshot) GroupListResponse {
	out := make([]GroupResponse, len(groups))
	for i := range groups {
		out[i] = ToGroupResponse(&groups[i])
	}
	return GroupListResponse{Groups: out, Count: len(out)}
}

// ToTopItemsResponse converts the top items of a group to an HTTP response DTO.
func ToTopItemsResponse(groupIndex int, items []catalog.ItemSnapshot) TopItemsResponse {
	return TopItemsResponse{
		GroupIndex: groupIndex,
		Items:      toItemResponses(items),
		Count:      len(items),
	}
}

// ToMutationResponse converts a ports.MutationResult to an HTTP response DTO.
func ToMutationResponse(res *ports.MutationResult) MutationResponse {
	resp := MutationResponse{
		GroupIndex: res.GroupIndex,
		ItemCount:  res.ItemCount,
		TopItems:   toItemResponses(res.TopItems),
	}
	if res.Item != nil {
		item := ToItemResponse(res.Item)
		resp.Item = &item
	}
	return resp
}

// ToChangeListResponse converts change records to an HTTP response DTO.
func ToChangeListResponse(groupIndex int, records []catalog.ChangeRecord) ChangeListResponse {
	events := make([]ChangeResponse, len(records))
	for i := range records {
		events[i] = toChangeResponse(&records[i])
	}
	return ChangeListResponse{GroupIndex: groupIndex, Events: events, Count: len(events)}
}

func toChangeResponse(r *catalog.ChangeRecord) ChangeResponse {
	resp := ChangeResponse{
		Seq:       r.Seq,
		Kind:      r.Kind,
		ItemID:    r.ItemID,
		OldItemID: r.OldItemID,
		ItemIDs:   r.ItemIDs,
	}
	switch r.Kind {
	case "reset":
	case "move":
		resp.Index = &r.Index
		resp.OldIndex = &r.OldIndex
	default:
		resp.Index = &r.Index
	}
	return resp
}

func toItemResponses(items []catalog.ItemSnapshot) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ToItemResponse(&items[i])
	}
	return out
}

func toImageResponse(img *catalog.Image) *ImageResponse {
	if img == nil {
		return nil
	}
	return &ImageResponse{URL: img.URL, ContentType: img.ContentType, Size: img.Size}
}

// HealthResponse represents the liveness and readiness endpoints' body.
// Checks is only present for readiness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
