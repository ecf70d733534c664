// Package dto provides data transfer objects for HTTP response handling.
package dto

import (
	statsDomain "github.com/contenthub/backend/internal/stats/domain"
)

// UsageStatResponse represents one day of model usage in API responses.
type UsageStatResponse struct {
	Date         string `json:"date"`
	Model        string `json:"model"`
	RequestCount int64  `json:"request_count"`
	TokenCount   int64  `json:"token_count"`
}

// ListUsageStatsResponse represents a usage stats range in API responses.
type ListUsageStatsResponse struct {
	Data []UsageStatResponse `json:"data"`
}

// MapUsageStatsToListResponse converts domain usage stats to a list response.
func MapUsageStatsToListResponse(stats []*statsDomain.UsageStat) ListUsageStatsResponse {
	data := make([]UsageStatResponse, 0, len(stats))
	for _, stat := range stats {
		data = append(data, UsageStatResponse{
			Date:         stat.Date,
			Model:        stat.Model,
			RequestCount: stat.RequestCount,
			TokenCount:   stat.TokenCount,
		})
	}

	return ListUsageStatsResponse{
		Data: data,
	}
}
