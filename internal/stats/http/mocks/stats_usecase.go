// Package mocks provides mock implementations for testing stats HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	statsDomain "github.com/contenthub/backend/internal/stats/domain"
)

// MockStatsUseCase is a mock implementation of StatsUseCase for testing.
type MockStatsUseCase struct {
	mock.Mock
}

// Record mocks the Record method of StatsUseCase.
func (m *MockStatsUseCase) Record(ctx context.Context, model string, tokens int) error {
	args := m.Called(ctx, model, tokens)
	return args.Error(0)
}

// ListRange mocks the ListRange method of StatsUseCase.
func (m *MockStatsUseCase) ListRange(
	ctx context.Context,
	from, to string,
) ([]*statsDomain.UsageStat, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*statsDomain.UsageStat), args.Error(1)
}
