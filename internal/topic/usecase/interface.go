// Package usecase defines the interfaces and implementations for topic
// management use cases: hand-written topics and refiner-produced topics
// derived from captured materials.
package usecase

import (
	"context"

	"github.com/google/uuid"

	materialDomain "github.com/contenthub/backend/internal/material/domain"
	settingDomain "github.com/contenthub/backend/internal/setting/domain"
	topicDomain "github.com/contenthub/backend/internal/topic/domain"
)

// TopicRepository defines the interface for Topic persistence operations.
type TopicRepository interface {
	Create(ctx context.Context, topic *topicDomain.Topic) error
	GetByID(ctx context.Context, topicID uuid.UUID) (*topicDomain.Topic, error)
	List(ctx context.Context, materialID *uuid.UUID, offset, limit int) ([]*topicDomain.Topic, error)
	Update(ctx context.Context, topic *topicDomain.Topic) error
	Delete(ctx context.Context, topicID uuid.UUID) error
}

// MaterialReader loads materials that topics are derived from.
type MaterialReader interface {
	GetByID(ctx context.Context, materialID uuid.UUID) (*materialDomain.Material, error)
	List(ctx context.Context, sourceType string, offset, limit int) ([]*materialDomain.Material, error)
}

// SettingReader resolves decrypted setting values, credentials included.
type SettingReader interface {
	Get(ctx context.Context, key string) (*settingDomain.Setting, error)
}

// UsageRecorder accumulates refiner token consumption per model and day.
type UsageRecorder interface {
	Record(ctx context.Context, model string, tokens int) error
}

// TopicUseCase defines the interface for topic management business logic.
type TopicUseCase interface {
	// Create stores a hand-written topic for an active material.
	Create(ctx context.Context, input *topicDomain.CreateTopicInput) (*topicDomain.Topic, error)
	// Refine runs a material through the content refiner and persists the
	// resulting topic together with its token usage.
	Refine(ctx context.Context, input *topicDomain.RefineTopicInput) (*topicDomain.Topic, error)
	// Discover runs a digest of the material library through the refiner
	// and returns topic ideas without persisting a topic.
	Discover(ctx context.Context) (*topicDomain.Inspiration, error)
	// List returns topics, newest first, optionally filtered by material.
	List(
		ctx context.Context,
		materialID *uuid.UUID,
		offset, limit int,
	) ([]*topicDomain.Topic, error)
	// Get returns a topic by id.
	Get(ctx context.Context, topicID uuid.UUID) (*topicDomain.Topic, error)
	// Update rewrites a topic's title, content and tags.
	Update(
		ctx context.Context,
		topicID uuid.UUID,
		input *topicDomain.UpdateTopicInput,
	) (*topicDomain.Topic, error)
	// Delete removes a topic.
	Delete(ctx context.Context, topicID uuid.UUID) error
}
