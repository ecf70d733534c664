package domain

import (
	"regexp"

	validation "github.com/jellydator/validation"

	customValidation "github.com/contenthub/backend/internal/validation"
)

// hexColor matches a #rrggbb display color.
var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateTagInput contains the parameters for registering a tag.
type CreateTagInput struct {
	Name  string
	Color string
}

// Validate checks if the tag creation input is valid.
func (i *CreateTagInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 100)),
		validation.Field(&i.Color, validation.Match(hexColor).Error("must be a #rrggbb color")),
	)
}
