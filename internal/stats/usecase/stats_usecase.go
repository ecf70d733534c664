package usecase

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/contenthub/backend/internal/errors"
	statsDomain "github.com/contenthub/backend/internal/stats/domain"
)

// defaultRangeDays is the window returned when the caller gives no bounds.
const defaultRangeDays = 30

// statsUseCase implements the StatsUseCase interface.
type statsUseCase struct {
	statsRepo StatsRepository
	// now is injectable for tests.
	now func() time.Time
}

// Record accumulates one refinement call for the model on the current UTC day.
func (s *statsUseCase) Record(ctx context.Context, model string, tokens int) error {
	if strings.TrimSpace(model) == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "model must not be blank")
	}
	if tokens < 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "token count must not be negative")
	}

	date := s.now().UTC().Format(statsDomain.DateLayout)
	return s.statsRepo.Increment(ctx, date, model, int64(tokens))
}

// ListRange returns usage stats for the inclusive date range. Empty bounds
// default to the last thirty days ending today.
func (s *statsUseCase) ListRange(
	ctx context.Context,
	from, to string,
) ([]*statsDomain.UsageStat, error) {
	today := s.now().UTC()
	if to == "" {
		to = today.Format(statsDomain.DateLayout)
	}
	if from == "" {
		from = today.AddDate(0, 0, -(defaultRangeDays - 1)).Format(statsDomain.DateLayout)
	}

	fromDay, err := time.Parse(statsDomain.DateLayout, from)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "invalid from date %q: must be YYYY-MM-DD", from)
	}
	toDay, err := time.Parse(statsDomain.DateLayout, to)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "invalid to date %q: must be YYYY-MM-DD", to)
	}
	if toDay.Before(fromDay) {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "from date must not be after to date")
	}

	return s.statsRepo.ListRange(ctx, from, to)
}

// NewStatsUseCase creates a new StatsUseCase instance.
func NewStatsUseCase(statsRepo StatsRepository) StatsUseCase {
	return &statsUseCase{
		statsRepo: statsRepo,
		now:       time.Now,
	}
}
