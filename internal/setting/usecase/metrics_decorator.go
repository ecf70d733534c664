package usecase

import (
	"context"
	"time"

	"github.com/contenthub/backend/internal/metrics"
	settingDomain "github.com/contenthub/backend/internal/setting/domain"
)

// settingUseCaseWithMetrics decorates SettingUseCase with metrics instrumentation.
type settingUseCaseWithMetrics struct {
	next    SettingUseCase
	metrics metrics.BusinessMetrics
}

// NewSettingUseCaseWithMetrics wraps a SettingUseCase with metrics recording.
func NewSettingUseCaseWithMetrics(useCase SettingUseCase, m metrics.BusinessMetrics) SettingUseCase {
	return &settingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Upsert records metrics for setting write operations.
func (s *settingUseCaseWithMetrics) Upsert(
	ctx context.Context,
	key, value string,
) (*settingDomain.Setting, error) {
	start := time.Now()
	setting, err := s.next.Upsert(ctx, key, value)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "setting", "setting_upsert", status)
	s.metrics.RecordDuration(ctx, "setting", "setting_upsert", time.Since(start), status)

	return setting, err
}

// Get records metrics for setting read operations.
func (s *settingUseCaseWithMetrics) Get(
	ctx context.Context,
	key string,
) (*settingDomain.Setting, error) {
	start := time.Now()
	setting, err := s.next.Get(ctx, key)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "setting", "setting_get", status)
	s.metrics.RecordDuration(ctx, "setting", "setting_get", time.Since(start), status)

	return setting, err
}

// List records metrics for setting list operations.
func (s *settingUseCaseWithMetrics) List(ctx context.Context) ([]*settingDomain.Setting, error) {
	start := time.Now()
	settings, err := s.next.List(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "setting", "setting_list", status)
	s.metrics.RecordDuration(ctx, "setting", "setting_list", time.Since(start), status)

	return settings, err
}
