// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	settingDomain "github.com/contenthub/backend/internal/setting/domain"
)

// MockSettingUseCase is a mock implementation of SettingUseCase for testing.
type MockSettingUseCase struct {
	mock.Mock
}

// Upsert mocks the Upsert method of SettingUseCase.
func (m *MockSettingUseCase) Upsert(
	ctx context.Context,
	key, value string,
) (*settingDomain.Setting, error) {
	args := m.Called(ctx, key, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingDomain.Setting), args.Error(1)
}

// Get mocks the Get method of SettingUseCase.
func (m *MockSettingUseCase) Get(ctx context.Context, key string) (*settingDomain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingDomain.Setting), args.Error(1)
}

// List mocks the List method of SettingUseCase.
func (m *MockSettingUseCase) List(ctx context.Context) ([]*settingDomain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*settingDomain.Setting), args.Error(1)
}
