package redact

import "strings"

// sensitiveKeySubstrings marks map keys whose values must never leave the
// process. A key is sensitive when its lowercase form contains any entry.
var sensitiveKeySubstrings = []string{
	"password", "pwd", "passwd",
	"api_key", "apikey", "api_token", "token",
	"secret", "secret_key",
	"encryption_key",
	"authorization", "auth",
	"private_key", "access_token", "refresh_token",
}

// isSensitiveKey reports whether a map key names a secret-bearing field.
func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeySubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// Map returns a copy of data with every sensitive, non-empty value replaced
// by the redaction marker. Nested maps and slices of maps are walked
// recursively; all other values pass through unchanged. Total and idempotent.
func Map(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}

	out := make(map[string]any, len(data))
	for key, value := range data {
		switch {
		case isSensitiveKey(key):
			if isEmpty(value) {
				out[key] = value
			} else {
				out[key] = Marker
			}
		default:
			out[key] = redactValue(value)
		}
	}
	return out
}

// redactValue recurses into nested containers.
func redactValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Map(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			if nested, ok := item.(map[string]any); ok {
				items[i] = Map(nested)
			} else {
				items[i] = item
			}
		}
		return items
	default:
		return value
	}
}

// isEmpty mirrors the "present and non-empty" redaction condition: empty
// strings and nils keep their value so callers can distinguish unset fields.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}
