// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	topicDomain "github.com/contenthub/backend/internal/topic/domain"
)

// TopicResponse represents a topic in API responses.
type TopicResponse struct {
	ID         string    `json:"id"`
	MaterialID string    `json:"material_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	PromptName string    `json:"prompt_name"`
	Tags       []string  `json:"tags"`
	SourceType string    `json:"source_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MapTopicToResponse converts a domain topic to an API response.
func MapTopicToResponse(topic *topicDomain.Topic) TopicResponse {
	tags := topic.Tags
	if tags == nil {
		tags = []string{}
	}
	return TopicResponse{
		ID:         topic.ID.String(),
		MaterialID: topic.MaterialID.String(),
		Title:      topic.Title,
		Content:    topic.Content,
		PromptName: topic.PromptName,
		Tags:       tags,
		SourceType: string(topic.SourceType),
		CreatedAt:  topic.CreatedAt,
		UpdatedAt:  topic.UpdatedAt,
	}
}

// InspirationResponse represents refiner-produced topic ideas in API
// responses. Model is empty when the library was empty and no refiner call
// was made.
type InspirationResponse struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Model   string   `json:"model"`
}

// MapInspirationToResponse converts domain topic ideas to an API response.
func MapInspirationToResponse(inspiration *topicDomain.Inspiration) InspirationResponse {
	tags := inspiration.Tags
	if tags == nil {
		tags = []string{}
	}
	return InspirationResponse{
		Title:   inspiration.Title,
		Content: inspiration.Content,
		Tags:    tags,
		Model:   inspiration.Model,
	}
}

// ListTopicsResponse represents a paginated list of topics in API responses.
type ListTopicsResponse struct {
	Data []TopicResponse `json:"data"`
}

// MapTopicsToListResponse converts a slice of domain topics to a list response.
func MapTopicsToListResponse(topics []*topicDomain.Topic) ListTopicsResponse {
	data := make([]TopicResponse, 0, len(topics))
	for _, topic := range topics {
		data = append(data, MapTopicToResponse(topic))
	}

	return ListTopicsResponse{
		Data: data,
	}
}
