package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/fetch"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
	"github.com/contenthub/backend/internal/metrics"
)

// materialUseCaseWithMetrics decorates MaterialUseCase with metrics instrumentation.
type materialUseCaseWithMetrics struct {
	next    MaterialUseCase
	metrics metrics.BusinessMetrics
}

// NewMaterialUseCaseWithMetrics wraps a MaterialUseCase with metrics recording.
func NewMaterialUseCaseWithMetrics(useCase MaterialUseCase, m metrics.BusinessMetrics) MaterialUseCase {
	return &materialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (d *materialUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	d.metrics.RecordOperation(ctx, "material", operation, status)
	d.metrics.RecordDuration(ctx, "material", operation, time.Since(start), status)
}

func (d *materialUseCaseWithMetrics) CreateFromText(
	ctx context.Context,
	input *materialDomain.CreateTextMaterialInput,
) (*materialDomain.Material, error) {
	start := time.Now()
	material, err := d.next.CreateFromText(ctx, input)
	d.record(ctx, "material_create_text", start, err)
	return material, err
}

func (d *materialUseCaseWithMetrics) CreateFromURL(
	ctx context.Context,
	input *materialDomain.CreateURLMaterialInput,
) (*materialDomain.Material, error) {
	start := time.Now()
	material, err := d.next.CreateFromURL(ctx, input)
	d.record(ctx, "material_create_url", start, err)
	return material, err
}

func (d *materialUseCaseWithMetrics) FetchImage(
	ctx context.Context,
	input *materialDomain.FetchImageInput,
) (*fetch.Image, error) {
	start := time.Now()
	image, err := d.next.FetchImage(ctx, input)
	d.record(ctx, "material_fetch_image", start, err)
	return image, err
}

func (d *materialUseCaseWithMetrics) UpdateTags(
	ctx context.Context,
	input *materialDomain.UpdateTagsInput,
) (int, error) {
	start := time.Now()
	updated, err := d.next.UpdateTags(ctx, input)
	d.record(ctx, "material_update_tags", start, err)
	return updated, err
}

func (d *materialUseCaseWithMetrics) List(
	ctx context.Context,
	sourceType string,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	start := time.Now()
	materials, err := d.next.List(ctx, sourceType, offset, limit)
	d.record(ctx, "material_list", start, err)
	return materials, err
}

func (d *materialUseCaseWithMetrics) Get(
	ctx context.Context,
	materialID uuid.UUID,
) (*materialDomain.Material, error) {
	start := time.Now()
	material, err := d.next.Get(ctx, materialID)
	d.record(ctx, "material_get", start, err)
	return material, err
}

func (d *materialUseCaseWithMetrics) SoftDelete(ctx context.Context, materialID uuid.UUID) error {
	start := time.Now()
	err := d.next.SoftDelete(ctx, materialID)
	d.record(ctx, "material_soft_delete", start, err)
	return err
}

func (d *materialUseCaseWithMetrics) Restore(ctx context.Context, materialID uuid.UUID) error {
	start := time.Now()
	err := d.next.Restore(ctx, materialID)
	d.record(ctx, "material_restore", start, err)
	return err
}

func (d *materialUseCaseWithMetrics) PermanentDelete(
	ctx context.Context,
	materialID uuid.UUID,
) error {
	start := time.Now()
	err := d.next.PermanentDelete(ctx, materialID)
	d.record(ctx, "material_permanent_delete", start, err)
	return err
}

func (d *materialUseCaseWithMetrics) ListRecycleBin(
	ctx context.Context,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	start := time.Now()
	materials, err := d.next.ListRecycleBin(ctx, offset, limit)
	d.record(ctx, "material_recycle_bin", start, err)
	return materials, err
}
