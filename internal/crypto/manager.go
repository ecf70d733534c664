// Package crypto provides the settings-value cipher: authenticated symmetric
// encryption for sensitive configuration values at rest.
package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/chacha20poly1305"

	apperrors "github.com/contenthub/backend/internal/errors"
)

// KeySize is the required cipher key length in bytes.
const KeySize = chacha20poly1305.KeySize

// Manager encrypts and decrypts string values with ChaCha20-Poly1305.
// The wire format is base64(nonce || sealed); a fresh random nonce is drawn
// per encryption. A Manager is built once at startup and safe for
// concurrent use.
type Manager struct {
	aead cipher.AEAD

	// plaintextFallback enables the legacy compatibility mode: values that
	// fail to authenticate are returned verbatim instead of erroring, so
	// data written before encryption was introduced keeps reading back.
	plaintextFallback bool

	logger *slog.Logger
}

// NewManager creates a cipher manager from a raw 32-byte key.
// An invalid key is fatal: the process must not start with a broken cipher.
func NewManager(key []byte, plaintextFallback bool, logger *slog.Logger) (*Manager, error) {
	if len(key) != KeySize {
		return nil, apperrors.Wrap(
			apperrors.ErrCipher,
			fmt.Sprintf("cipher key must be %d bytes, got %d", KeySize, len(key)),
		)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCipher, fmt.Sprintf("failed to create cipher: %v", err))
	}

	if plaintextFallback {
		logger.Warn("cipher plaintext fallback enabled: values failing decryption are returned verbatim")
	}

	return &Manager{
		aead:              aead,
		plaintextFallback: plaintextFallback,
		logger:            logger,
	}, nil
}

// Encrypt seals a plaintext value. Empty input returns empty output without
// touching the cipher.
func (m *Manager) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, m.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCipher, fmt.Sprintf("failed to generate nonce: %v", err))
	}

	sealed := m.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt. Empty input returns empty
// output. A value that fails to decode or authenticate returns ErrCipher,
// unless the plaintext fallback mode is on, in which case the input comes
// back unchanged and a warning is logged.
func (m *Manager) Decrypt(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	plaintext, err := m.open(value)
	if err != nil {
		if m.plaintextFallback {
			m.logger.Warn("value failed to decrypt, returning it verbatim (plaintext fallback)")
			return value, nil
		}
		return "", err
	}
	return plaintext, nil
}

// IsEncrypted reports whether the value decrypts under the current key.
// Useful for migration tooling; not a reliable tamper check on its own.
func (m *Manager) IsEncrypted(value string) bool {
	if value == "" {
		return false
	}
	_, err := m.open(value)
	return err == nil
}

func (m *Manager) open(value string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCipher, "value is not valid base64")
	}

	nonceSize := m.aead.NonceSize()
	if len(raw) < nonceSize+m.aead.Overhead() {
		return "", apperrors.Wrap(apperrors.ErrCipher, "value is too short to be a sealed box")
	}

	nonce, sealed := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := m.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCipher, "value failed to authenticate")
	}
	return string(plaintext), nil
}
