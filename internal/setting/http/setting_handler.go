// Package http provides HTTP handlers for application setting operations.
// Sensitive setting values are encrypted at rest and redacted in list responses.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/backend/internal/httputil"
	"github.com/contenthub/backend/internal/setting/http/dto"
	settingUseCase "github.com/contenthub/backend/internal/setting/usecase"
	customValidation "github.com/contenthub/backend/internal/validation"
)

// SettingHandler handles HTTP requests for setting management operations.
type SettingHandler struct {
	settingUseCase settingUseCase.SettingUseCase
	logger         *slog.Logger
}

// NewSettingHandler creates a new setting handler with required dependencies.
func NewSettingHandler(useCase settingUseCase.SettingUseCase, logger *slog.Logger) *SettingHandler {
	return &SettingHandler{
		settingUseCase: useCase,
		logger:         logger,
	}
}

// UpsertHandler writes a setting value under the given key.
// PUT /v1/settings/:key
// Returns 200 OK with the written setting; sensitive values are stored encrypted.
func (h *SettingHandler) UpsertHandler(c *gin.Context) {
	key := c.Param("key")

	var req dto.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	setting, err := h.settingUseCase.Upsert(c.Request.Context(), key, req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSettingToResponse(setting))
}

// GetHandler retrieves a setting by key, decrypting sensitive values.
// GET /v1/settings/:key
func (h *SettingHandler) GetHandler(c *gin.Context) {
	key := c.Param("key")

	setting, err := h.settingUseCase.Get(c.Request.Context(), key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSettingToResponse(setting))
}

// ListHandler retrieves all settings with sensitive values redacted.
// GET /v1/settings
func (h *SettingHandler) ListHandler(c *gin.Context) {
	settings, err := h.settingUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSettingsToListResponse(settings))
}
