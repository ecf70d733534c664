// Package domain defines core domain models and errors for materials.
package domain

import (
	"github.com/contenthub/backend/internal/errors"
)

// Material-specific error definitions.
var (
	// ErrMaterialNotFound indicates the material does not exist or was permanently removed.
	ErrMaterialNotFound = errors.Wrap(errors.ErrNotFound, "material not found")

	// ErrMaterialNotDeleted indicates a recycle-bin operation on a material that is still active.
	ErrMaterialNotDeleted = errors.Wrap(errors.ErrConflict, "material is not in the recycle bin")
)
