// Package usecase defines the interfaces and implementations for material
// management use cases: capturing content from pasted text or gated URL
// fetches, and moving materials through the recycle bin lifecycle.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/fetch"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
)

// MaterialRepository defines the interface for Material persistence operations.
type MaterialRepository interface {
	Create(ctx context.Context, material *materialDomain.Material) error
	GetByID(ctx context.Context, materialID uuid.UUID) (*materialDomain.Material, error)
	List(ctx context.Context, sourceType string, offset, limit int) ([]*materialDomain.Material, error)
	ListDeleted(ctx context.Context, offset, limit int) ([]*materialDomain.Material, error)
	UpdateTags(ctx context.Context, materialID uuid.UUID, tags []string, updatedAt time.Time) error
	SoftDelete(ctx context.Context, materialID uuid.UUID, deletedAt time.Time) error
	Restore(ctx context.Context, materialID uuid.UUID) error
	Delete(ctx context.Context, materialID uuid.UUID) error
}

// PageFetcher retrieves pages through the outbound security gate.
type PageFetcher interface {
	FetchPage(ctx context.Context, rawURL string) (*fetch.Page, error)
}

// ImageFetcher retrieves images through the outbound security gate.
type ImageFetcher interface {
	FetchImage(ctx context.Context, rawURL string) (*fetch.Image, error)
}

// TagRecorder keeps the tag index in step with labels applied to materials.
type TagRecorder interface {
	RecordUsage(ctx context.Context, names []string) error
}

// MaterialUseCase defines the interface for material management business logic.
type MaterialUseCase interface {
	// CreateFromText captures pasted text as a new material.
	CreateFromText(
		ctx context.Context,
		input *materialDomain.CreateTextMaterialInput,
	) (*materialDomain.Material, error)
	// CreateFromURL fetches a page through the security gate and captures
	// its readable content as a new material.
	CreateFromURL(
		ctx context.Context,
		input *materialDomain.CreateURLMaterialInput,
	) (*materialDomain.Material, error)
	// FetchImage retrieves a remote image through the security gate and
	// returns its bytes for client-side handling.
	FetchImage(
		ctx context.Context,
		input *materialDomain.FetchImageInput,
	) (*fetch.Image, error)
	// List returns active materials, optionally filtered by source type.
	List(
		ctx context.Context,
		sourceType string,
		offset, limit int,
	) ([]*materialDomain.Material, error)
	// UpdateTags relabels a batch of materials and returns how many were
	// updated. Missing or recycled materials are skipped.
	UpdateTags(ctx context.Context, input *materialDomain.UpdateTagsInput) (int, error)
	// Get returns an active material by id.
	Get(ctx context.Context, materialID uuid.UUID) (*materialDomain.Material, error)
	// SoftDelete moves a material to the recycle bin.
	SoftDelete(ctx context.Context, materialID uuid.UUID) error
	// Restore moves a material out of the recycle bin.
	Restore(ctx context.Context, materialID uuid.UUID) error
	// PermanentDelete removes a recycle-bin material for good.
	PermanentDelete(ctx context.Context, materialID uuid.UUID) error
	// ListRecycleBin returns soft-deleted materials.
	ListRecycleBin(ctx context.Context, offset, limit int) ([]*materialDomain.Material, error)
}
