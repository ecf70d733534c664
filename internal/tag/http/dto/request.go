// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	tagDomain "github.com/contenthub/backend/internal/tag/domain"
)

// CreateTagRequest contains the parameters for registering a tag.
type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ToInput converts the request to a domain input.
func (r *CreateTagRequest) ToInput() *tagDomain.CreateTagInput {
	return &tagDomain.CreateTagInput{
		Name:  r.Name,
		Color: r.Color,
	}
}
