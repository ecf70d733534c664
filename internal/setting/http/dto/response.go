// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	settingDomain "github.com/contenthub/backend/internal/setting/domain"
)

// SettingResponse represents a setting in API responses.
// For sensitive keys the Value field carries the redaction marker in list
// responses and plaintext only in single-key GET responses.
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Sensitive bool      `json:"sensitive"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapSettingToResponse converts a domain setting to an API response.
func MapSettingToResponse(setting *settingDomain.Setting) SettingResponse {
	return SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		Sensitive: settingDomain.IsSensitiveKey(setting.Key),
		CreatedAt: setting.CreatedAt,
		UpdatedAt: setting.UpdatedAt,
	}
}

// ListSettingsResponse represents a list of settings in API responses.
type ListSettingsResponse struct {
	Data []SettingResponse `json:"data"`
}

// MapSettingsToListResponse converts a slice of domain settings to a list response.
func MapSettingsToListResponse(settings []*settingDomain.Setting) ListSettingsResponse {
	data := make([]SettingResponse, 0, len(settings))
	for _, setting := range settings {
		data = append(data, MapSettingToResponse(setting))
	}

	return ListSettingsResponse{
		Data: data,
	}
}
