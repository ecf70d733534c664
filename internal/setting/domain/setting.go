// Package domain defines the core domain models for application settings.
// Settings are simple key/value pairs; values for sensitive keys (provider
// API credentials) are encrypted before they reach storage.
package domain

import (
	"time"
)

// Setting represents a single configuration entry keyed by name.
type Setting struct {
	// Key is the unique setting identifier (lowercase snake_case).
	Key string
	// Value holds the setting value. For sensitive keys this is ciphertext
	// in storage and plaintext only after an explicit decrypting read.
	Value string
	// CreatedAt is the UTC timestamp when the setting was first written.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last write.
	UpdatedAt time.Time
}

// sensitiveKeys lists the setting keys whose values are encrypted at rest
// and redacted in bulk reads.
var sensitiveKeys = map[string]struct{}{
	"openai_api_key":   {},
	"claude_api_key":   {},
	"deepseek_api_key": {},
	"gemini_api_key":   {},
}

// IsSensitiveKey reports whether values stored under key must be encrypted.
func IsSensitiveKey(key string) bool {
	_, ok := sensitiveKeys[key]
	return ok
}
