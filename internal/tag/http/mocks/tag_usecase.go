// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tagDomain "github.com/contenthub/backend/internal/tag/domain"
)

// MockTagUseCase is a mock implementation of TagUseCase for testing.
type MockTagUseCase struct {
	mock.Mock
}

// Create mocks the Create method of TagUseCase.
func (m *MockTagUseCase) Create(
	ctx context.Context,
	input *tagDomain.CreateTagInput,
) (*tagDomain.Tag, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tagDomain.Tag), args.Error(1)
}

// List mocks the List method of TagUseCase.
func (m *MockTagUseCase) List(ctx context.Context) ([]*tagDomain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tagDomain.Tag), args.Error(1)
}

// RecordUsage mocks the RecordUsage method of TagUseCase.
func (m *MockTagUseCase) RecordUsage(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}
