package usecase

import (
	"context"
	"time"

	"github.com/contenthub/backend/internal/crypto"
	apperrors "github.com/contenthub/backend/internal/errors"
	"github.com/contenthub/backend/internal/redact"
	settingDomain "github.com/contenthub/backend/internal/setting/domain"
	customValidation "github.com/contenthub/backend/internal/validation"
	validation "github.com/jellydator/validation"
)

// settingUseCase implements the SettingUseCase interface.
type settingUseCase struct {
	settingRepo SettingRepository
	cipher      *crypto.Manager
}

// Upsert writes a setting value, encrypting it first when the key is sensitive.
func (s *settingUseCase) Upsert(
	ctx context.Context,
	key, value string,
) (*settingDomain.Setting, error) {
	if err := validation.Validate(key, validation.Required, customValidation.SettingKey); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	storedValue := value
	if settingDomain.IsSensitiveKey(key) {
		encrypted, err := s.cipher.Encrypt(value)
		if err != nil {
			return nil, err
		}
		storedValue = encrypted
	}

	now := time.Now().UTC()
	setting := &settingDomain.Setting{
		Key:       key,
		Value:     storedValue,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	// Return the plaintext value to the caller; only storage sees ciphertext.
	setting.Value = value
	return setting, nil
}

// Get retrieves a setting by key, decrypting sensitive values.
func (s *settingUseCase) Get(ctx context.Context, key string) (*settingDomain.Setting, error) {
	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if settingDomain.IsSensitiveKey(key) {
		plaintext, err := s.cipher.Decrypt(setting.Value)
		if err != nil {
			return nil, apperrors.Wrapf(err, "failed to decrypt setting %s", key)
		}
		setting.Value = plaintext
	}

	return setting, nil
}

// List retrieves all settings with sensitive values redacted.
func (s *settingUseCase) List(ctx context.Context) ([]*settingDomain.Setting, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, setting := range settings {
		if settingDomain.IsSensitiveKey(setting.Key) && setting.Value != "" {
			setting.Value = redact.Marker
		}
	}

	return settings, nil
}

// NewSettingUseCase creates a new SettingUseCase with the given dependencies.
func NewSettingUseCase(settingRepo SettingRepository, cipher *crypto.Manager) SettingUseCase {
	return &settingUseCase{
		settingRepo: settingRepo,
		cipher:      cipher,
	}
}
