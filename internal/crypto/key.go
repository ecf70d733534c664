package crypto

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gocloud.dev/secrets"

	apperrors "github.com/contenthub/backend/internal/errors"

	// Register KMS provider drivers for key unwrapping.
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KeyConfig describes where the cipher key comes from. Sources are tried in
// order: explicit base64 key, KMS-wrapped key, machine-derived fallback.
type KeyConfig struct {
	// EncodedKey is a base64-encoded 32-byte key (ENCRYPTION_KEY).
	EncodedKey string
	// KMSKeyURI names a gocloud.dev secrets keeper used to unwrap WrappedKey.
	KMSKeyURI string
	// WrappedKey is the base64-encoded KMS ciphertext of the key.
	WrappedKey string
}

// LoadKey resolves the cipher key material. The machine-derived fallback is
// deterministic per host and loudly flagged as unsuitable for production.
func LoadKey(ctx context.Context, cfg KeyConfig, logger *slog.Logger) ([]byte, error) {
	if cfg.EncodedKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.EncodedKey)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCipher, "ENCRYPTION_KEY is not valid base64")
		}
		if len(key) != KeySize {
			return nil, apperrors.Wrap(
				apperrors.ErrCipher,
				fmt.Sprintf("ENCRYPTION_KEY must decode to %d bytes, got %d", KeySize, len(key)),
			)
		}
		return key, nil
	}

	if cfg.KMSKeyURI != "" {
		return unwrapKey(ctx, cfg)
	}

	logger.Warn("ENCRYPTION_KEY not set, deriving cipher key from machine identity (development only)")
	return deriveMachineKey(), nil
}

// unwrapKey opens the configured KMS keeper and decrypts the wrapped key.
// Supports gcpkms://, awskms://, azurekeyvault://, hashivault:// and
// base64key:// URIs.
func unwrapKey(ctx context.Context, cfg KeyConfig) ([]byte, error) {
	if cfg.WrappedKey == "" {
		return nil, apperrors.Wrap(
			apperrors.ErrCipher,
			"ENCRYPTION_KMS_KEY_URI is set but ENCRYPTION_WRAPPED_KEY is empty",
		)
	}

	wrapped, err := base64.StdEncoding.DecodeString(cfg.WrappedKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCipher, "ENCRYPTION_WRAPPED_KEY is not valid base64")
	}

	keeper, err := secrets.OpenKeeper(ctx, cfg.KMSKeyURI)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCipher, fmt.Sprintf("failed to open KMS keeper: %v", err))
	}
	defer keeper.Close()

	key, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCipher, fmt.Sprintf("failed to unwrap cipher key: %v", err))
	}
	if len(key) != KeySize {
		return nil, apperrors.Wrap(
			apperrors.ErrCipher,
			fmt.Sprintf("unwrapped key must be %d bytes, got %d", KeySize, len(key)),
		)
	}
	return key, nil
}

// deriveMachineKey hashes a machine identifier into a 32-byte key. The
// identifier is /etc/machine-id where available, the hostname otherwise.
func deriveMachineKey() []byte {
	id := machineID()
	sum := sha256.Sum256([]byte(id))
	return sum[:]
}

func machineID() string {
	if raw, err := os.ReadFile("/etc/machine-id"); err == nil {
		if id := strings.TrimSpace(string(raw)); id != "" {
			return id
		}
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	return "contenthub-dev-machine"
}

// GenerateKey returns a fresh random key, base64-encoded for ENCRYPTION_KEY.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCipher, fmt.Sprintf("failed to generate key: %v", err))
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
