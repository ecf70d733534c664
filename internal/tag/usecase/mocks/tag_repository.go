// Package mocks provides mock implementations for testing tag use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tagDomain "github.com/contenthub/backend/internal/tag/domain"
)

// MockTagRepository is a mock implementation of TagRepository for testing.
type MockTagRepository struct {
	mock.Mock
}

// Create mocks the Create method of TagRepository.
func (m *MockTagRepository) Create(ctx context.Context, tag *tagDomain.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

// GetByName mocks the GetByName method of TagRepository.
func (m *MockTagRepository) GetByName(
	ctx context.Context,
	name string,
) (*tagDomain.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tagDomain.Tag), args.Error(1)
}

// List mocks the List method of TagRepository.
func (m *MockTagRepository) List(ctx context.Context) ([]*tagDomain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tagDomain.Tag), args.Error(1)
}

// IncrementUsage mocks the IncrementUsage method of TagRepository.
func (m *MockTagRepository) IncrementUsage(ctx context.Context, tag *tagDomain.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}
