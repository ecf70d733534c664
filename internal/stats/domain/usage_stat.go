// Package domain defines the core domain models for refiner usage statistics.
// Usage accumulates per model and UTC day.
package domain

import (
	"time"
)

// DateLayout is the canonical YYYY-MM-DD format for usage stat dates.
const DateLayout = "2006-01-02"

// UsageStat accumulates refiner consumption for one model on one UTC day.
type UsageStat struct {
	// Date is the UTC day in YYYY-MM-DD format.
	Date string
	// Model is the refiner model that consumed the tokens.
	Model string
	// RequestCount is the number of refinement calls.
	RequestCount int64
	// TokenCount is the total tokens consumed.
	TokenCount int64
	// UpdatedAt is the UTC timestamp of the last increment.
	UpdatedAt time.Time
}
