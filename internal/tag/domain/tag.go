// Package domain defines the core domain models for the tag index. The
// index tracks every label applied to materials together with a display
// color and a usage count.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultColor is the display color assigned when a tag is created without one.
const DefaultColor = "#3b82f6"

// Tag represents one entry of the tag index.
type Tag struct {
	// ID is the unique identifier for the tag.
	ID uuid.UUID
	// Name is the unique label text.
	Name string
	// Color is the display color as a #rrggbb hex string.
	Color string
	// UsageCount counts how often the tag has been applied to materials.
	UsageCount int64
	// IsPreset marks tags shipped with the application.
	IsPreset bool
	// CreatedAt is the UTC timestamp when the tag was first seen.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last usage bump or edit.
	UpdatedAt time.Time
}
