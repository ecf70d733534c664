// Package domain defines the core domain models for refined topics.
// A topic is the distilled form of a material: either written by hand or
// produced by the content refiner.
package domain

import (
	"time"

	"github.com/google/uuid"

	materialDomain "github.com/contenthub/backend/internal/material/domain"
)

// Topic represents a refined piece of content derived from a material.
type Topic struct {
	// ID is the unique identifier for the topic.
	ID uuid.UUID
	// MaterialID references the material this topic was derived from.
	MaterialID uuid.UUID
	// Title is the topic headline.
	Title string
	// Content is the refined text.
	Content string
	// PromptName records which refinement prompt produced this topic
	// ("manual" for hand-written topics).
	PromptName string
	// Tags are free-form labels stored as a JSON array.
	Tags []string
	// SourceType is copied from the originating material.
	SourceType materialDomain.SourceType
	// CreatedAt is the UTC timestamp when the topic was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last modification.
	UpdatedAt time.Time
}

// Inspiration is a refiner-produced set of topic ideas distilled from a
// digest of the material library. Nothing is persisted for it; the ideas go
// back to the caller as a starting point for new topics.
type Inspiration struct {
	// Title is a short name the refiner gave the idea set.
	Title string
	// Content is the idea list in the materials' language.
	Content string
	// Tags are the themes the refiner saw across the library.
	Tags []string
	// Model is the refiner model that produced the ideas (empty when the
	// library was empty and the refiner was never called).
	Model string
}
