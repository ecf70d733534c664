// Package domain defines core domain models and errors for the tag index.
package domain

import (
	"github.com/contenthub/backend/internal/errors"
)

// Tag-specific error definitions.
var (
	// ErrTagNotFound indicates no tag exists under the requested name.
	ErrTagNotFound = errors.Wrap(errors.ErrNotFound, "tag not found")

	// ErrTagAlreadyExists indicates a create collided with an existing tag name.
	ErrTagAlreadyExists = errors.Wrap(errors.ErrConflict, "tag already exists")
)
