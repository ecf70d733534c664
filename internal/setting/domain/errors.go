// Package domain defines core domain models and errors for settings.
package domain

import (
	"github.com/contenthub/backend/internal/errors"
)

// Setting-specific error definitions.
var (
	// ErrSettingNotFound indicates no setting exists under the requested key.
	ErrSettingNotFound = errors.Wrap(errors.ErrNotFound, "setting not found")
)
