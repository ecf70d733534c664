package commands

import (
	"fmt"
	"io"

	"github.com/contenthub/backend/internal/crypto"
)

// RunGenerateEncryptionKey generates a fresh cipher key for sensitive
// settings and prints it in dotenv format.
func RunGenerateEncryptionKey(w io.Writer) error {
	key, err := crypto.GenerateKey()
	if err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}

	fmt.Fprintf(w, "ENCRYPTION_KEY=%q\n", key)
	return nil
}
