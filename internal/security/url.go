// Package security implements the outbound-fetch security gate: URL
// sanitization and validation, a domain allow-list, private-address
// classification and a DNS-resolution guard against SSRF and DNS rebinding.
package security

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/contenthub/backend/internal/errors"
)

// maxURLLength caps candidate URLs, counted in characters, before parsing.
const maxURLLength = 2048

// encodedControlChars matches percent-encoded CR/LF and NUL sequences used in
// response-splitting style smuggling through URLs.
var encodedControlChars = regexp.MustCompile(`(?i)%0[da]|%00`)

// SanitizeURL trims surrounding whitespace and strips percent-encoded CR/LF
// and NUL sequences. It never fails; worst case the input comes back
// whitespace-trimmed.
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	return encodedControlChars.ReplaceAllString(raw, "")
}

// ValidateURLFormat performs structural validation of a candidate URL.
// It rejects empty or oversized input, unparsable URLs, non-HTTP(S) schemes,
// missing hosts and credentials embedded in the authority. Pure function;
// rejections wrap ErrSecurityValidation with a non-sensitive reason.
func ValidateURLFormat(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return apperrors.Wrap(apperrors.ErrSecurityValidation, "url cannot be empty")
	}

	if utf8.RuneCountInString(rawURL) > maxURLLength {
		return apperrors.Wrap(
			apperrors.ErrSecurityValidation,
			fmt.Sprintf("url exceeds maximum length of %d characters", maxURLLength),
		)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return apperrors.Wrap(
			apperrors.ErrSecurityValidation,
			fmt.Sprintf("invalid url format: %v", err),
		)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return apperrors.Wrap(
			apperrors.ErrSecurityValidation,
			fmt.Sprintf("unsupported scheme %q, only http/https are allowed", u.Scheme),
		)
	}

	if u.Host == "" {
		return apperrors.Wrap(apperrors.ErrSecurityValidation, "url is missing a hostname")
	}

	// Credentials embedded in the authority are a known SSRF/phishing vector.
	if u.User != nil {
		return apperrors.Wrap(
			apperrors.ErrSecurityValidation,
			"url must not contain embedded credentials",
		)
	}

	return nil
}
