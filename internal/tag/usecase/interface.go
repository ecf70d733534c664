// Package usecase defines the interfaces and implementations for the tag
// index: registering tags, listing them and keeping usage counts in step
// with the labels applied to materials.
package usecase

import (
	"context"

	tagDomain "github.com/contenthub/backend/internal/tag/domain"
)

// TagRepository defines the interface for Tag persistence operations.
type TagRepository interface {
	Create(ctx context.Context, tag *tagDomain.Tag) error
	GetByName(ctx context.Context, name string) (*tagDomain.Tag, error)
	List(ctx context.Context) ([]*tagDomain.Tag, error)
	IncrementUsage(ctx context.Context, tag *tagDomain.Tag) error
}

// TagUseCase defines the interface for tag index business logic.
type TagUseCase interface {
	// Create registers a new tag under a unique name.
	Create(ctx context.Context, input *tagDomain.CreateTagInput) (*tagDomain.Tag, error)
	// List returns the whole tag index, most used first.
	List(ctx context.Context) ([]*tagDomain.Tag, error)
	// RecordUsage bumps the usage count for each named tag, registering
	// tags the index has not seen yet.
	RecordUsage(ctx context.Context, names []string) error
}
