package usecase

import (
	"context"
	"time"

	"github.com/contenthub/backend/internal/metrics"
	tagDomain "github.com/contenthub/backend/internal/tag/domain"
)

// tagUseCaseWithMetrics decorates TagUseCase with metrics instrumentation.
type tagUseCaseWithMetrics struct {
	next    TagUseCase
	metrics metrics.BusinessMetrics
}

// NewTagUseCaseWithMetrics wraps a TagUseCase with metrics recording.
func NewTagUseCaseWithMetrics(useCase TagUseCase, m metrics.BusinessMetrics) TagUseCase {
	return &tagUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (d *tagUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	d.metrics.RecordOperation(ctx, "tag", operation, status)
	d.metrics.RecordDuration(ctx, "tag", operation, time.Since(start), status)
}

func (d *tagUseCaseWithMetrics) Create(
	ctx context.Context,
	input *tagDomain.CreateTagInput,
) (*tagDomain.Tag, error) {
	start := time.Now()
	tag, err := d.next.Create(ctx, input)
	d.record(ctx, "tag_create", start, err)
	return tag, err
}

func (d *tagUseCaseWithMetrics) List(ctx context.Context) ([]*tagDomain.Tag, error) {
	start := time.Now()
	tags, err := d.next.List(ctx)
	d.record(ctx, "tag_list", start, err)
	return tags, err
}

func (d *tagUseCaseWithMetrics) RecordUsage(ctx context.Context, names []string) error {
	start := time.Now()
	err := d.next.RecordUsage(ctx, names)
	d.record(ctx, "tag_record_usage", start, err)
	return err
}
