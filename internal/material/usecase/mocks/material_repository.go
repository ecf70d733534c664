// Package mocks provides mock implementations for testing material use cases.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/contenthub/backend/internal/fetch"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
)

// MockMaterialRepository is a mock implementation of MaterialRepository for testing.
type MockMaterialRepository struct {
	mock.Mock
}

// Create mocks the Create method of MaterialRepository.
func (m *MockMaterialRepository) Create(
	ctx context.Context,
	material *materialDomain.Material,
) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

// GetByID mocks the GetByID method of MaterialRepository.
func (m *MockMaterialRepository) GetByID(
	ctx context.Context,
	materialID uuid.UUID,
) (*materialDomain.Material, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*materialDomain.Material), args.Error(1)
}

// List mocks the List method of MaterialRepository.
func (m *MockMaterialRepository) List(
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

// ListDeleted mocks the ListDeleted method of MaterialRepository.
func (m *MockMaterialRepository) ListDeleted(
	ctx context.Context,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*materialDomain.Material), args.Error(1)
}

// UpdateTags mocks the UpdateTags method of MaterialRepository.
func (m *MockMaterialRepository) UpdateTags(
	ctx context.Context,
	materialID uuid.UUID,
	tags []string,
	updatedAt time.Time,
) error {
	args := m.Called(ctx, materialID, tags, updatedAt)
	return args.Error(0)
}

// SoftDelete mocks the SoftDelete method of MaterialRepository.
func (m *MockMaterialRepository) SoftDelete(
	ctx context.Context,
	materialID uuid.UUID,
	deletedAt time.Time,
) error {
	args := m.Called(ctx, materialID, deletedAt)
	return args.Error(0)
}

// Restore mocks the Restore method of MaterialRepository.
func (m *MockMaterialRepository) Restore(ctx context.Context, materialID uuid.UUID) error {
	args := m.Called(ctx, materialID)
	return args.Error(0)
}

// Delete mocks the Delete method of MaterialRepository.
func (m *MockMaterialRepository) Delete(ctx context.Context, materialID uuid.UUID) error {
	args := m.Called(ctx, materialID)
	return args.Error(0)
}

// MockPageFetcher is a mock implementation of PageFetcher for testing.
type MockPageFetcher struct {
	mock.Mock
}

// FetchPage mocks the FetchPage method of PageFetcher.
func (m *MockPageFetcher) FetchPage(ctx context.Context, rawURL string) (*fetch.Page, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fetch.Page), args.Error(1)
}

// MockImageFetcher is a mock implementation of ImageFetcher for testing.
type MockImageFetcher struct {
	mock.Mock
}

// FetchImage mocks the FetchImage method of ImageFetcher.
func (m *MockImageFetcher) FetchImage(ctx context.Context, rawURL string) (*fetch.Image, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fetch.Image), args.Error(1)
}

// MockTagRecorder is a mock implementation of TagRecorder for testing.
type MockTagRecorder struct {
	mock.Mock
}

// RecordUsage mocks the RecordUsage method of TagRecorder.
func (m *MockTagRecorder) RecordUsage(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}
