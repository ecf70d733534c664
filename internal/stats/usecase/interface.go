// Package usecase defines the interfaces and implementations for refiner
// usage statistics: recording token consumption and querying it by date
// range.
package usecase

import (
	"context"

	statsDomain "github.com/contenthub/backend/internal/stats/domain"
)

// StatsRepository defines the interface for UsageStat persistence operations.
type StatsRepository interface {
	Increment(ctx context.Context, date, model string, tokens int64) error
	ListRange(ctx context.Context, from, to string) ([]*statsDomain.UsageStat, error)
}

// StatsUseCase defines the interface for usage statistics business logic.
type StatsUseCase interface {
	// Record accumulates one refinement call for the model on the current
	// UTC day.
	Record(ctx context.Context, model string, tokens int) error
	// ListRange returns usage stats for the inclusive date range. Empty
	// bounds default to the last thirty days ending today.
	ListRange(ctx context.Context, from, to string) ([]*statsDomain.UsageStat, error)
}
