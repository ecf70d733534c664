// Package mocks provides mock implementations for testing stats use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	statsDomain "github.com/contenthub/backend/internal/stats/domain"
)

// MockStatsRepository is a mock implementation of StatsRepository for testing.
type MockStatsRepository struct {
	mock.Mock
}

// Increment mocks the Increment method of StatsRepository.
func (m *MockStatsRepository) Increment(
	ctx context.Context,
	date, model string,
	tokens int64,
) error {
	args := m.Called(ctx, date, model, tokens)
	return args.Error(0)
}

// ListRange mocks the ListRange method of StatsRepository.
func (m *MockStatsRepository) ListRange(
	ctx context.Context,
	from, to string,
) ([]*statsDomain.UsageStat, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*statsDomain.UsageStat), args.Error(1)
}
