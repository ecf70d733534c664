package usecase

import (
	"context"
	"time"

	"github.com/contenthub/backend/internal/metrics"
	statsDomain "github.com/contenthub/backend/internal/stats/domain"
)

// statsUseCaseWithMetrics decorates StatsUseCase with metrics instrumentation.
type statsUseCaseWithMetrics struct {
	next    StatsUseCase
	metrics metrics.BusinessMetrics
}

// NewStatsUseCaseWithMetrics wraps a StatsUseCase with metrics recording.
func NewStatsUseCaseWithMetrics(useCase StatsUseCase, m metrics.BusinessMetrics) StatsUseCase {
	return &statsUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (d *statsUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	d.metrics.RecordOperation(ctx, "stats", operation, status)
	d.metrics.RecordDuration(ctx, "stats", operation, time.Since(start), status)
}

func (d *statsUseCaseWithMetrics) Record(ctx context.Context, model string, tokens int) error {
	start := time.Now()
	err := d.next.Record(ctx, model, tokens)
	d.record(ctx, "usage_record", start, err)
	return err
}

func (d *statsUseCaseWithMetrics) ListRange(
	ctx context.Context,
	from, to string,
) ([]*statsDomain.UsageStat, error) {
	start := time.Now()
	stats, err := d.next.ListRange(ctx, from, to)
	d.record(ctx, "usage_list_range", start, err)
	return stats, err
}
