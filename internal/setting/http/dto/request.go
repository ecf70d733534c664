// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
)

// UpsertSettingRequest contains the parameters for writing a setting value.
// The key is extracted from the URL parameter, not the request body.
type UpsertSettingRequest struct {
	Value string `json:"value"`
}

// Validate checks if the upsert setting request is valid.
func (r *UpsertSettingRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Length(0, 65536),
		),
	)
}
