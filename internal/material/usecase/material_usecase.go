package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/purell"
	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	"github.com/contenthub/backend/internal/fetch"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
	customValidation "github.com/contenthub/backend/internal/validation"
)

// materialUseCase implements the MaterialUseCase interface.
type materialUseCase struct {
	materialRepo MaterialRepository
	pageFetcher  PageFetcher
	imageFetcher ImageFetcher
	tags         TagRecorder
	txManager    database.TxManager
}

// CreateFromText captures pasted text as a new material.
func (m *materialUseCase) CreateFromText(
	ctx context.Context,
	input *materialDomain.CreateTextMaterialInput,
) (*materialDomain.Material, error) {
	if err := input.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	material := newMaterial(
		input.Title,
		input.Content,
		materialDomain.SourceTypeText,
		nil,
		input.Tags,
	)
	if err := m.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// CreateFromURL fetches a page through the security gate and captures its
// readable content as a new material. Gate rejections surface unmodified.
func (m *materialUseCase) CreateFromURL(
	ctx context.Context,
	input *materialDomain.CreateURLMaterialInput,
) (*materialDomain.Material, error) {
	if err := input.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	page, err := m.pageFetcher.FetchPage(ctx, input.URL)
	if err != nil {
		return nil, err
	}

	sourceURL := normalizeURL(page.URL)
	material := newMaterial(
		page.Title,
		page.Content,
		materialDomain.SourceTypeURL,
		&sourceURL,
		input.Tags,
	)
	if err := m.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// FetchImage retrieves a remote image through the security gate. Gate
// rejections surface unmodified. Nothing is persisted; the bytes go back to
// the caller for client-side handling.
func (m *materialUseCase) FetchImage(
	ctx context.Context,
	input *materialDomain.FetchImageInput,
) (*fetch.Image, error) {
	if err := input.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}
	return m.imageFetcher.FetchImage(ctx, input.URL)
}

// UpdateTags relabels a batch of materials inside one transaction and keeps
// the tag index usage counts in step. Missing or recycled materials are
// skipped; the returned count covers the materials actually updated.
func (m *materialUseCase) UpdateTags(
	ctx context.Context,
	input *materialDomain.UpdateTagsInput,
) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, customValidation.WrapValidationError(err)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	updated := 0
	err := m.txManager.WithTx(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()
		for _, materialID := range input.MaterialIDs {
			err := m.materialRepo.UpdateTags(ctx, materialID, tags, now)
			if err != nil {
				if apperrors.Is(err, apperrors.ErrNotFound) {
					continue
				}
				return err
			}
			updated++
		}
		if updated == 0 || len(tags) == 0 {
			return nil
		}
		return m.tags.RecordUsage(ctx, tags)
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// List returns active materials, optionally filtered by source type.
func (m *materialUseCase) List(
	ctx context.Context,
	sourceType string,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	if sourceType != "" {
		if err := customValidation.SourceType.Validate(sourceType); err != nil {
			return nil, customValidation.WrapValidationError(err)
		}
	}
	return m.materialRepo.List(ctx, sourceType, offset, limit)
}

// Get returns an active material by id. Recycle-bin materials read as absent.
func (m *materialUseCase) Get(
	ctx context.Context,
	materialID uuid.UUID,
) (*materialDomain.Material, error) {
	material, err := m.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material.DeletedAt != nil {
		return nil, materialDomain.ErrMaterialNotFound
	}
	return material, nil
}

// SoftDelete moves a material to the recycle bin.
func (m *materialUseCase) SoftDelete(ctx context.Context, materialID uuid.UUID) error {
	return m.materialRepo.SoftDelete(ctx, materialID, time.Now().UTC())
}

// Restore moves a material out of the recycle bin.
func (m *materialUseCase) Restore(ctx context.Context, materialID uuid.UUID) error {
	return m.materialRepo.Restore(ctx, materialID)
}

// PermanentDelete removes a material for good. Only recycle-bin materials can
// be permanently deleted; active ones must be soft-deleted first.
func (m *materialUseCase) PermanentDelete(ctx context.Context, materialID uuid.UUID) error {
	material, err := m.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return err
	}
	if material.DeletedAt == nil {
		return materialDomain.ErrMaterialNotDeleted
	}
	return m.materialRepo.Delete(ctx, materialID)
}

// ListRecycleBin returns soft-deleted materials.
func (m *materialUseCase) ListRecycleBin(
	ctx context.Context,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	return m.materialRepo.ListDeleted(ctx, offset, limit)
}

// NewMaterialUseCase creates a new MaterialUseCase with the given dependencies.
func NewMaterialUseCase(
	materialRepo MaterialRepository,
	pageFetcher PageFetcher,
	imageFetcher ImageFetcher,
	tags TagRecorder,
	txManager database.TxManager,
) MaterialUseCase {
	return &materialUseCase{
		materialRepo: materialRepo,
		pageFetcher:  pageFetcher,
		imageFetcher: imageFetcher,
		tags:         tags,
		txManager:    txManager,
	}
}

// newMaterial builds a material entity with generated id and timestamps.
func newMaterial(
	title, content string,
	sourceType materialDomain.SourceType,
	sourceURL *string,
	tags []string,
) *materialDomain.Material {
	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC()
	return &materialDomain.Material{
		ID:            uuid.Must(uuid.NewV7()),
		Title:         title,
		Content:       content,
		ContentLength: utf8.RuneCountInString(content),
		SourceType:    sourceType,
		SourceURL:     sourceURL,
		Tags:          tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// normalizeURL canonicalizes a source URL for storage. Normalization failures
// keep the original URL; it already passed the gate.
func normalizeURL(rawURL string) string {
	normalized, err := purell.NormalizeURLString(rawURL, purell.FlagsUsuallySafeGreedy)
	if err != nil {
		return rawURL
	}
	return normalized
}
