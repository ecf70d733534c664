// Package mocks provides mock implementations for testing topic HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	topicDomain "github.com/contenthub/backend/internal/topic/domain"
)

// MockTopicUseCase is a mock implementation of TopicUseCase for testing.
type MockTopicUseCase struct {
	mock.Mock
}

// Create mocks the Create method of TopicUseCase.
func (m *MockTopicUseCase) Create(
	ctx context.Context,
	input *topicDomain.CreateTopicInput,
) (*topicDomain.Topic, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topicDomain.Topic), args.Error(1)
}

// Refine mocks the Refine method of TopicUseCase.
func (m *MockTopicUseCase) Refine(
	ctx context.Context,
	input *topicDomain.RefineTopicInput,
) (*topicDomain.Topic, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topicDomain.Topic), args.Error(1)
}

// Discover mocks the Discover method of TopicUseCase.
func (m *MockTopicUseCase) Discover(ctx context.Context) (*topicDomain.Inspiration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topicDomain.Inspiration), args.Error(1)
}

// List mocks the List method of TopicUseCase.
func (m *MockTopicUseCase) List(
	ctx context.Context,
	materialID *uuid.UUID,
	offset, limit int,
) ([]*topicDomain.Topic, error) {
	args := m.Called(ctx, materialID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*topicDomain.Topic), args.Error(1)
}

// Get mocks the Get method of TopicUseCase.
func (m *MockTopicUseCase) Get(
	ctx context.Context,
	topicID uuid.UUID,
) (*topicDomain.Topic, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topicDomain.Topic), args.Error(1)
}

// Update mocks the Update method of TopicUseCase.
func (m *MockTopicUseCase) Update(
	ctx context.Context,
	topicID uuid.UUID,
	input *topicDomain.UpdateTopicInput,
) (*topicDomain.Topic, error) {
	args := m.Called(ctx, topicID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topicDomain.Topic), args.Error(1)
}

// Delete mocks the Delete method of TopicUseCase.
func (m *MockTopicUseCase) Delete(ctx context.Context, topicID uuid.UUID) error {
	args := m.Called(ctx, topicID)
	return args.Error(0)
}
