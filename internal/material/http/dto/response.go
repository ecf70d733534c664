// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/contenthub/backend/internal/fetch"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
)

// MaterialResponse represents a material in API responses.
type MaterialResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	ContentLength int        `json:"content_length"`
	SourceType    string     `json:"source_type"`
	SourceURL     *string    `json:"source_url,omitempty"`
	Tags          []string   `json:"tags"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

// MapMaterialToResponse converts a domain material to an API response.
func MapMaterialToResponse(material *materialDomain.Material) MaterialResponse {
	tags := material.Tags
	if tags == nil {
		tags = []string{}
	}
	return MaterialResponse{
		ID:            material.ID.String(),
		Title:         material.Title,
		Content:       material.Content,
		ContentLength: material.ContentLength,
		SourceType:    string(material.SourceType),
		SourceURL:     material.SourceURL,
		Tags:          tags,
		CreatedAt:     material.CreatedAt,
		UpdatedAt:     material.UpdatedAt,
		DeletedAt:     material.DeletedAt,
	}
}

// ImageResponse carries a fetched image back to the client. Data is
// base64-encoded by the JSON encoder.
type ImageResponse struct {
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	Data        []byte `json:"data"`
}

// MapImageToResponse converts a fetched image to an API response.
func MapImageToResponse(image *fetch.Image) ImageResponse {
	return ImageResponse{
		ContentType: image.ContentType,
		Size:        len(image.Data),
		Data:        image.Data,
	}
}

// UpdateTagsResponse reports how many materials a tag update touched.
type UpdateTagsResponse struct {
	UpdatedCount int `json:"updated_count"`
}

// ListMaterialsResponse represents a paginated list of materials in API responses.
type ListMaterialsResponse struct {
	Data []MaterialResponse `json:"data"`
}

// MapMaterialsToListResponse converts a slice of domain materials to a list response.
func MapMaterialsToListResponse(materials []*materialDomain.Material) ListMaterialsResponse {
	data := make([]MaterialResponse, 0, len(materials))
	for _, material := range materials {
		data = append(data, MapMaterialToResponse(material))
	}

	return ListMaterialsResponse{
		Data: data,
	}
}
