// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/contenthub/backend/internal/fetch"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
)

// MockMaterialUseCase is a mock implementation of MaterialUseCase for testing.
type MockMaterialUseCase struct {
	mock.Mock
}

// CreateFromText mocks the CreateFromText method of MaterialUseCase.
func (m *MockMaterialUseCase) CreateFromText(
	ctx context.Context,
	input *materialDomain.CreateTextMaterialInput,
) (*materialDomain.Material, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*materialDomain.Material), args.Error(1)
}

// CreateFromURL mocks the CreateFromURL method of MaterialUseCase.
func (m *MockMaterialUseCase) CreateFromURL(
	ctx context.Context,
	input *materialDomain.CreateURLMaterialInput,
) (*materialDomain.Material, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*materialDomain.Material), args.Error(1)
}

// FetchImage mocks the FetchImage method of MaterialUseCase.
func (m *MockMaterialUseCase) FetchImage(
	ctx context.Context,
	input *materialDomain.FetchImageInput,
) (*fetch.Image, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fetch.Image), args.Error(1)
}

// UpdateTags mocks the UpdateTags method of MaterialUseCase.
func (m *MockMaterialUseCase) UpdateTags(
	ctx context.Context,
	input *materialDomain.UpdateTagsInput,
) (int, error) {
	args := m.Called(ctx, input)
	return args.Int(0), args.Error(1)
}

// List mocks the List method of MaterialUseCase.
func (m *MockMaterialUseCase) List(
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

// Get mocks the Get method of MaterialUseCase.
func (m *MockMaterialUseCase) Get(
	ctx context.Context,
	materialID uuid.UUID,
) (*materialDomain.Material, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*materialDomain.Material), args.Error(1)
}

// SoftDelete mocks the SoftDelete method of MaterialUseCase.
func (m *MockMaterialUseCase) SoftDelete(ctx context.Context, materialID uuid.UUID) error {
	args := m.Called(ctx, materialID)
	return args.Error(0)
}

// Restore mocks the Restore method of MaterialUseCase.
func (m *MockMaterialUseCase) Restore(ctx context.Context, materialID uuid.UUID) error {
	args := m.Called(ctx, materialID)
	return args.Error(0)
}

// PermanentDelete mocks the PermanentDelete method of MaterialUseCase.
func (m *MockMaterialUseCase) PermanentDelete(ctx context.Context, materialID uuid.UUID) error {
	args := m.Called(ctx, materialID)
	return args.Error(0)
}

// ListRecycleBin mocks the ListRecycleBin method of MaterialUseCase.
func (m *MockMaterialUseCase) ListRecycleBin(
	ctx context.Context,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*materialDomain.Material), args.Error(1)
}
