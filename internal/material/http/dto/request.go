// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/google/uuid"

	materialDomain "github.com/contenthub/backend/internal/material/domain"
)

// CreateTextMaterialRequest contains the parameters for capturing pasted text.
type CreateTextMaterialRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// ToInput converts the request to a domain input.
func (r *CreateTextMaterialRequest) ToInput() *materialDomain.CreateTextMaterialInput {
	return &materialDomain.CreateTextMaterialInput{
		Title:   r.Title,
		Content: r.Content,
		Tags:    r.Tags,
	}
}

// FetchImageRequest contains the parameters for retrieving a remote image.
type FetchImageRequest struct {
	URL string `json:"url"`
}

// ToInput converts the request to a domain input.
func (r *FetchImageRequest) ToInput() *materialDomain.FetchImageInput {
	return &materialDomain.FetchImageInput{
		URL: r.URL,
	}
}

// UpdateTagsRequest contains the parameters for relabeling a batch of materials.
type UpdateTagsRequest struct {
	MaterialIDs []uuid.UUID `json:"material_ids"`
	Tags        []string    `json:"tags"`
}

// ToInput converts the request to a domain input.
func (r *UpdateTagsRequest) ToInput() *materialDomain.UpdateTagsInput {
	return &materialDomain.UpdateTagsInput{
		MaterialIDs: r.MaterialIDs,
		Tags:        r.Tags,
	}
}

// CreateURLMaterialRequest contains the parameters for capturing a web page.
type CreateURLMaterialRequest struct {
	URL  string   `json:"url"`
	Tags []string `json:"tags"`
}

// ToInput converts the request to a domain input.
func (r *CreateURLMaterialRequest) ToInput() *materialDomain.CreateURLMaterialInput {
	return &materialDomain.CreateURLMaterialInput{
		URL:  r.URL,
		Tags: r.Tags,
	}
}
