package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/contenthub/backend/internal/errors"
	tagDomain "github.com/contenthub/backend/internal/tag/domain"
	customValidation "github.com/contenthub/backend/internal/validation"
)

// tagUseCase implements the TagUseCase interface.
type tagUseCase struct {
	tagRepo TagRepository
}

// Create registers a new tag under a unique name.
func (t *tagUseCase) Create(
	ctx context.Context,
	input *tagDomain.CreateTagInput,
) (*tagDomain.Tag, error) {
	if err := input.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	name := strings.TrimSpace(input.Name)
	if _, err := t.tagRepo.GetByName(ctx, name); err == nil {
		return nil, tagDomain.ErrTagAlreadyExists
	} else if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	tag := newTag(name, input.Color)
	if err := t.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// List returns the whole tag index, most used first.
func (t *tagUseCase) List(ctx context.Context) ([]*tagDomain.Tag, error) {
	return t.tagRepo.List(ctx)
}

// RecordUsage bumps the usage count for each named tag. Names the index has
// not seen are registered with the default color; blanks and duplicates in
// the batch are ignored.
func (t *tagUseCase) RecordUsage(ctx context.Context, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if err := t.tagRepo.IncrementUsage(ctx, newTag(name, "")); err != nil {
			return err
		}
	}
	return nil
}

// NewTagUseCase creates a new TagUseCase with the given dependencies.
func NewTagUseCase(tagRepo TagRepository) TagUseCase {
	return &tagUseCase{tagRepo: tagRepo}
}

// newTag builds a tag entity with generated id and timestamps.
func newTag(name, color string) *tagDomain.Tag {
	if color == "" {
		color = tagDomain.DefaultColor
	}
	now := time.Now().UTC()
	return &tagDomain.Tag{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
