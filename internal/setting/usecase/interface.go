// Package usecase defines the interfaces and implementations for setting
// management use cases. Sensitive setting values are encrypted before they
// reach the repository and decrypted only on single-key reads.
package usecase

import (
	"context"

	settingDomain "github.com/contenthub/backend/internal/setting/domain"
)

// SettingRepository defines the interface for Setting persistence operations.
type SettingRepository interface {
	Upsert(ctx context.Context, setting *settingDomain.Setting) error
	GetByKey(ctx context.Context, key string) (*settingDomain.Setting, error)
	List(ctx context.Context) ([]*settingDomain.Setting, error)
}

// SettingUseCase defines the interface for setting management business logic.
type SettingUseCase interface {
	// Upsert writes a setting value, encrypting it first when the key is sensitive.
	Upsert(ctx context.Context, key, value string) (*settingDomain.Setting, error)
	// Get retrieves a setting by key, decrypting sensitive values.
	Get(ctx context.Context, key string) (*settingDomain.Setting, error)
	// List retrieves all settings. Sensitive values are replaced with the
	// redaction marker and are never decrypted in bulk.
	List(ctx context.Context) ([]*settingDomain.Setting, error)
}
