// Package mocks provides mock implementations for testing topic use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	materialDomain "github.com/contenthub/backend/internal/material/domain"
	"github.com/contenthub/backend/internal/refiner"
	settingDomain "github.com/contenthub/backend/internal/setting/domain"
	topicDomain "github.com/contenthub/backend/internal/topic/domain"
)

// MockTopicRepository is a mock implementation of TopicRepository for testing.
type MockTopicRepository struct {
	mock.Mock
}

// Create mocks the Create method of TopicRepository.
func (m *MockTopicRepository) Create(ctx context.Context, topic *topicDomain.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

// GetByID mocks the GetByID method of TopicRepository.
func (m *MockTopicRepository) GetByID(
	ctx context.Context,
	topicID uuid.UUID,
) (*topicDomain.Topic, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topicDomain.Topic), args.Error(1)
}

// List mocks the List method of TopicRepository.
func (m *MockTopicRepository) List(
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

// Update mocks the Update method of TopicRepository.
func (m *MockTopicRepository) Update(ctx context.Context, topic *topicDomain.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

// Delete mocks the Delete method of TopicRepository.
func (m *MockTopicRepository) Delete(ctx context.Context, topicID uuid.UUID) error {
	args := m.Called(ctx, topicID)
	return args.Error(0)
}

// MockMaterialReader is a mock implementation of MaterialReader for testing.
type MockMaterialReader struct {
	mock.Mock
}

// GetByID mocks the GetByID method of MaterialReader.
func (m *MockMaterialReader) GetByID(
	ctx context.Context,
	materialID uuid.UUID,
) (*materialDomain.Material, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*materialDomain.Material), args.Error(1)
}

// List mocks the List method of MaterialReader.
func (m *MockMaterialReader) List(
	ctx context.Context,
	sourceType string,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	args := m.Called(ctx, sourceType, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*materialDomain.Material), args.Error(1)
}

// MockSettingReader is a mock implementation of SettingReader for testing.
type MockSettingReader struct {
	mock.Mock
}

// Get mocks the Get method of SettingReader.
func (m *MockSettingReader) Get(
	ctx context.Context,
	key string,
) (*settingDomain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingDomain.Setting), args.Error(1)
}

// MockUsageRecorder is a mock implementation of UsageRecorder for testing.
type MockUsageRecorder struct {
	mock.Mock
}

// Record mocks the Record method of UsageRecorder.
func (m *MockUsageRecorder) Record(ctx context.Context, model string, tokens int) error {
	args := m.Called(ctx, model, tokens)
	return args.Error(0)
}

// MockRefiner is a mock implementation of refiner.Refiner for testing.
type MockRefiner struct {
	mock.Mock
}

// Refine mocks the Refine method of Refiner.
func (m *MockRefiner) Refine(
	ctx context.Context,
	req *refiner.RefineRequest,
) (*refiner.RefineResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refiner.RefineResult), args.Error(1)
}
