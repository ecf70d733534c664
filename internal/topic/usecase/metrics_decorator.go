package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/metrics"
	topicDomain "github.com/contenthub/backend/internal/topic/domain"
)

// topicUseCaseWithMetrics decorates TopicUseCase with metrics instrumentation.
type topicUseCaseWithMetrics struct {
	next    TopicUseCase
	metrics metrics.BusinessMetrics
}

// NewTopicUseCaseWithMetrics wraps a TopicUseCase with metrics recording.
func NewTopicUseCaseWithMetrics(useCase TopicUseCase, m metrics.BusinessMetrics) TopicUseCase {
	return &topicUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (d *topicUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	d.metrics.RecordOperation(ctx, "topic", operation, status)
	d.metrics.RecordDuration(ctx, "topic", operation, time.Since(start), status)
}

func (d *topicUseCaseWithMetrics) Create(
	ctx context.Context,
	input *topicDomain.CreateTopicInput,
) (*topicDomain.Topic, error) {
	start := time.Now()
	topic, err := d.next.Create(ctx, input)
	d.record(ctx, "topic_create", start, err)
	return topic, err
}

func (d *topicUseCaseWithMetrics) Refine(
	ctx context.Context,
	input *topicDomain.RefineTopicInput,
) (*topicDomain.Topic, error) {
	start := time.Now()
	topic, err := d.next.Refine(ctx, input)
	d.record(ctx, "topic_refine", start, err)
	return topic, err
}

func (d *topicUseCaseWithMetrics) Discover(ctx context.Context) (*topicDomain.Inspiration, error) {
	start := time.Now()
	inspiration, err := d.next.Discover(ctx)
	d.record(ctx, "topic_discover", start, err)
	return inspiration, err
}

func (d *topicUseCaseWithMetrics) List(
	ctx context.Context,
	materialID *uuid.UUID,
	offset, limit int,
) ([]*topicDomain.Topic, error) {
	start := time.Now()
	topics, err := d.next.List(ctx, materialID, offset, limit)
	d.record(ctx, "topic_list", start, err)
	return topics, err
}

func (d *topicUseCaseWithMetrics) Get(
	ctx context.Context,
	topicID uuid.UUID,
) (*topicDomain.Topic, error) {
	start := time.Now()
	topic, err := d.next.Get(ctx, topicID)
	d.record(ctx, "topic_get", start, err)
	return topic, err
}

func (d *topicUseCaseWithMetrics) Update(
	ctx context.Context,
	topicID uuid.UUID,
	input *topicDomain.UpdateTopicInput,
) (*topicDomain.Topic, error) {
	start := time.Now()
	topic, err := d.next.Update(ctx, topicID, input)
	d.record(ctx, "topic_update", start, err)
	return topic, err
}

func (d *topicUseCaseWithMetrics) Delete(ctx context.Context, topicID uuid.UUID) error {
	start := time.Now()
	err := d.next.Delete(ctx, topicID)
	d.record(ctx, "topic_delete", start, err)
	return err
}
