package dto

import (
	"time"

	tagDomain "github.com/contenthub/backend/internal/tag/domain"
)

// TagResponse represents a tag in API responses.
type TagResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	UsageCount int64     `json:"usage_count"`
	IsPreset   bool      `json:"is_preset"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MapTagToResponse converts a domain tag to an API response.
func MapTagToResponse(tag *tagDomain.Tag) TagResponse {
	return TagResponse{
		ID:         tag.ID.String(),
		Name:       tag.Name,
		Color:      tag.Color,
		UsageCount: tag.UsageCount,
		IsPreset:   tag.IsPreset,
		CreatedAt:  tag.CreatedAt,
		UpdatedAt:  tag.UpdatedAt,
	}
}

// ListTagsResponse represents the tag index in API responses.
type ListTagsResponse struct {
	Data []TagResponse `json:"data"`
}

// MapTagsToListResponse converts a slice of domain tags to a list response.
func MapTagsToListResponse(tags []*tagDomain.Tag) ListTagsResponse {
	data := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		data = append(data, MapTagToResponse(tag))
	}

	return ListTagsResponse{
		Data: data,
	}
}
