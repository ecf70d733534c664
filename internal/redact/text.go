// Package redact masks secrets and personal data in free text, nested
// payload maps and structured log records before anything leaves the
// process boundary.
package redact

import "regexp"

// Marker replaces sensitive values. It deliberately matches none of the
// patterns below, which makes redaction idempotent.
const Marker = "***REDACTED***"

// rule pairs a matcher with its replacement. Order matters: provider key
// prefixes run before the generic field patterns.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

var rules = []rule{
	// Provider API keys
	{regexp.MustCompile(`sk-[a-zA-Z0-9]{48,}`), "sk-" + Marker},
	{regexp.MustCompile(`gsk-[a-zA-Z0-9]{48,}`), "gsk-" + Marker},
	{regexp.MustCompile(`claude-[a-zA-Z0-9]{32,}`), "claude-" + Marker},
	{regexp.MustCompile(`Bearer\s+[a-zA-Z0-9_\-.]+`), "Bearer " + Marker},

	// Password fields in JSON-like and query-string text
	{regexp.MustCompile(`(?i)("password"\s*:\s*")[^"]+(")`), "${1}" + Marker + "${2}"},
	{regexp.MustCompile(`(?i)('password'\s*:\s*')[^']+(')`), "${1}" + Marker + "${2}"},
	{regexp.MustCompile(`(?i)(password=)[^\s&]+`), "${1}" + Marker},

	// API key fields
	{regexp.MustCompile(`(?i)("api_key"\s*:\s*")[^"]+(")`), "${1}" + Marker + "${2}"},
	{regexp.MustCompile(`(?i)('api_key'\s*:\s*')[^']+(')`), "${1}" + Marker + "${2}"},
	{regexp.MustCompile(`(?i)(api_key=)[^\s&]+`), "${1}" + Marker},

	// Encryption key fields
	{regexp.MustCompile(`(?i)("encryption_key"\s*:\s*")[^"]+(")`), "${1}" + Marker + "${2}"},
	{regexp.MustCompile(`(?i)(encryption_key=)[^\s&]+`), "${1}" + Marker},

	// Credentials inside connection-string URLs
	{regexp.MustCompile(`(://[^:/\s]+:)[^@\s]+(@)`), "${1}" + Marker + "${2}"},

	// Email addresses, partially masked
	{
		regexp.MustCompile(`\b([a-zA-Z0-9._%+-]{1,3})[a-zA-Z0-9._%+-]*@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})\b`),
		"${1}***@${2}",
	},

	// Phone numbers (CN mobile), partially masked
	{regexp.MustCompile(`\b(1[3-9]\d)\d{4}(\d{4})\b`), "${1}****${2}"},

	// National ID numbers, partially masked
	{regexp.MustCompile(`\b(\d{6})\d{8}(\d{4})\b`), "${1}********${2}"},

	// Card numbers, partially masked
	{regexp.MustCompile(`\b(\d{4})\d{8,12}(\d{4})\b`), "${1}********${2}"},

	// Authorization headers
	{regexp.MustCompile(`(?i)(Authorization:\s*)[^\r\n]+`), "${1}" + Marker},
	{regexp.MustCompile(`(?i)("authorization"\s*:\s*")[^"]+(")`), "${1}" + Marker + "${2}"},
}

// Text applies every redaction rule in order and returns the scrubbed text.
// Total and idempotent: reapplying to already-redacted text is a no-op.
func Text(s string) string {
	for _, r := range rules {
		s = r.pattern.ReplaceAllString(s, r.replacement)
	}
	return s
}
