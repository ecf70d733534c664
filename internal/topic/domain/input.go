package domain

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	customValidation "github.com/contenthub/backend/internal/validation"
)

// CreateTopicInput contains the parameters for creating a topic by hand.
type CreateTopicInput struct {
	MaterialID uuid.UUID
	Title      string
	Content    string
	Tags       []string
}

// Validate checks if the create topic input is valid.
func (i *CreateTopicInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 512)),
		validation.Field(&i.Content, validation.Required, customValidation.NotBlank),
		validation.Field(&i.Tags, validation.Each(validation.Required, customValidation.NotBlank)),
	)
}

// RefineTopicInput contains the parameters for refining a material into a topic.
type RefineTopicInput struct {
	MaterialID uuid.UUID
	// PromptName selects a named refinement prompt; empty selects the default.
	PromptName string
}

// UpdateTopicInput contains the parameters for updating a topic.
type UpdateTopicInput struct {
	Title   string
	Content string
	Tags    []string
}

// Validate checks if the update topic input is valid.
func (i *UpdateTopicInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 512)),
		validation.Field(&i.Content, validation.Required, customValidation.NotBlank),
		validation.Field(&i.Tags, validation.Each(validation.Required, customValidation.NotBlank)),
	)
}
