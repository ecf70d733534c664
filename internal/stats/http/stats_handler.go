// Package http provides the HTTP handler for refiner usage statistics.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/backend/internal/httputil"
	"github.com/contenthub/backend/internal/stats/http/dto"
	statsUseCase "github.com/contenthub/backend/internal/stats/usecase"
)

// StatsHandler handles HTTP requests for usage statistics.
type StatsHandler struct {
	statsUseCase statsUseCase.StatsUseCase
	logger       *slog.Logger
}

// NewStatsHandler creates a new stats handler with required dependencies.
func NewStatsHandler(useCase statsUseCase.StatsUseCase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		statsUseCase: useCase,
		logger:       logger,
	}
}

// ListHandler returns usage stats for a date range. Empty bounds default to
// the last thirty days.
// GET /v1/usage-stats?from=2026-08-01&to=2026-08-31
func (h *StatsHandler) ListHandler(c *gin.Context) {
	stats, err := h.statsUseCase.ListRange(
		c.Request.Context(),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsageStatsToListResponse(stats))
}
