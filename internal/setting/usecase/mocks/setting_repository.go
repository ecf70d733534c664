// Package mocks provides mock implementations for testing setting use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	settingDomain "github.com/contenthub/backend/internal/setting/domain"
)

// MockSettingRepository is a mock implementation of SettingRepository for testing.
type MockSettingRepository struct {
	mock.Mock
}

// Upsert mocks the Upsert method of SettingRepository.
func (m *MockSettingRepository) Upsert(ctx context.Context, setting *settingDomain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

// GetByKey mocks the GetByKey method of SettingRepository.
func (m *MockSettingRepository) GetByKey(
	ctx context.Context,
	key string,
) (*settingDomain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingDomain.Setting), args.Error(1)
}

// List mocks the List method of SettingRepository.
func (m *MockSettingRepository) List(ctx context.Context) ([]*settingDomain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*settingDomain.Setting), args.Error(1)
}
