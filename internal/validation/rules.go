// Package validation provides custom validation rules for the application.
package validation

import (
	"net/url"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/contenthub/backend/internal/errors"
)

var (
	// settingKeyRegex matches lowercase snake_case identifiers
	settingKeyRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// SourceType validates that a material source type is one of the supported kinds
var SourceType = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == "text" || s == "url"
	},
	validation.NewError("validation_source_type", "must be either text or url"),
)

// HTTPURL validates that a string is an absolute http or https URL
var HTTPURL = validation.NewStringRuleWithError(
	func(s string) bool {
		u, err := url.Parse(s)
		if err != nil {
			return false
		}
		scheme := strings.ToLower(u.Scheme)
		return (scheme == "http" || scheme == "https") && u.Host != ""
	},
	validation.NewError("validation_http_url", "must be a valid http or https URL"),
)

// SettingKey validates that a setting key is a lowercase snake_case identifier
var SettingKey = validation.NewStringRuleWithError(
	func(s string) bool {
		return settingKeyRegex.MatchString(s)
	},
	validation.NewError("validation_setting_key", "must be a lowercase snake_case identifier"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
