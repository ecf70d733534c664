// Package domain defines the core domain models for curated materials.
// A material is a piece of captured content: pasted text or a page scraped
// from an allow-listed URL. Materials are soft-deleted into a recycle bin
// before permanent removal.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceType identifies how a material's content was captured.
type SourceType string

// Supported material source types.
const (
	SourceTypeText SourceType = "text"
	SourceTypeURL  SourceType = "url"
)

// Material represents a captured piece of content.
type Material struct {
	// ID is the unique identifier for the material.
	ID uuid.UUID
	// Title is an optional human-readable label. For URL captures it is
	// extracted from the page when not supplied.
	Title string
	// Content holds the captured text.
	Content string
	// ContentLength is the rune count of Content, denormalized for listings.
	ContentLength int
	// SourceType records how the content was captured.
	SourceType SourceType
	// SourceURL is the normalized origin URL (nil for pasted text).
	SourceURL *string
	// Tags are free-form labels stored as a JSON array.
	Tags []string
	// CreatedAt is the UTC timestamp when the material was captured.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last modification.
	UpdatedAt time.Time
	// DeletedAt marks when the material was moved to the recycle bin (nil if active).
	DeletedAt *time.Time
}
