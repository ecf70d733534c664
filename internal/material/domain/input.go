package domain

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	customValidation "github.com/contenthub/backend/internal/validation"
)

// CreateTextMaterialInput contains the parameters for capturing pasted text.
type CreateTextMaterialInput struct {
	Title   string
	Content string
	Tags    []string
}

// Validate checks if the text capture input is valid.
func (i *CreateTextMaterialInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Title, validation.Length(0, 512)),
		validation.Field(&i.Content, validation.Required, customValidation.NotBlank),
		validation.Field(&i.Tags, validation.Each(validation.Required, customValidation.NotBlank)),
	)
}

// UpdateTagsInput contains the parameters for relabeling a batch of materials.
type UpdateTagsInput struct {
	MaterialIDs []uuid.UUID
	Tags        []string
}

// Validate checks if the tag update input is valid.
func (i *UpdateTagsInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.MaterialIDs, validation.Required),
		validation.Field(&i.Tags, validation.Each(validation.Required, customValidation.NotBlank)),
	)
}

// FetchImageInput contains the parameters for retrieving a remote image.
type FetchImageInput struct {
	URL string
}

// Validate checks if the image fetch input is valid.
func (i *FetchImageInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.URL, validation.Required, customValidation.HTTPURL),
	)
}

// CreateURLMaterialInput contains the parameters for capturing a web page.
type CreateURLMaterialInput struct {
	URL  string
	Tags []string
}

// Validate checks if the URL capture input is valid.
func (i *CreateURLMaterialInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.URL, validation.Required, customValidation.HTTPURL),
		validation.Field(&i.Tags, validation.Each(validation.Required, customValidation.NotBlank)),
	)
}
