// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/google/uuid"

	topicDomain "github.com/contenthub/backend/internal/topic/domain"
)

// CreateTopicRequest contains the parameters for creating a topic by hand.
type CreateTopicRequest struct {
	MaterialID string   `json:"material_id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
}

// ToInput converts the request to a domain input.
func (r *CreateTopicRequest) ToInput(materialID uuid.UUID) *topicDomain.CreateTopicInput {
	return &topicDomain.CreateTopicInput{
		MaterialID: materialID,
		Title:      r.Title,
		Content:    r.Content,
		Tags:       r.Tags,
	}
}

// RefineTopicRequest contains the parameters for refining a material into a topic.
type RefineTopicRequest struct {
	MaterialID string `json:"material_id"`
	PromptName string `json:"prompt_name"`
}

// ToInput converts the request to a domain input.
func (r *RefineTopicRequest) ToInput(materialID uuid.UUID) *topicDomain.RefineTopicInput {
	return &topicDomain.RefineTopicInput{
		MaterialID: materialID,
		PromptName: r.PromptName,
	}
}

// UpdateTopicRequest contains the parameters for updating a topic.
type UpdateTopicRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// ToInput converts the request to a domain input.
func (r *UpdateTopicRequest) ToInput() *topicDomain.UpdateTopicInput {
	return &topicDomain.UpdateTopicInput{
		Title:   r.Title,
		Content: r.Content,
		Tags:    r.Tags,
	}
}
