// Package http provides HTTP handlers for material capture and lifecycle
// operations. URL captures run through the outbound security gate before any
// network connection happens.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/httputil"
	"github.com/contenthub/backend/internal/material/http/dto"
	materialUseCase "github.com/contenthub/backend/internal/material/usecase"
)

// MaterialHandler handles HTTP requests for material operations.
type MaterialHandler struct {
	materialUseCase materialUseCase.MaterialUseCase
	logger          *slog.Logger
}

// NewMaterialHandler creates a new material handler with required dependencies.
func NewMaterialHandler(
	useCase materialUseCase.MaterialUseCase,
	logger *slog.Logger,
) *MaterialHandler {
	return &MaterialHandler{
		materialUseCase: useCase,
		logger:          logger,
	}
}

// CreateTextHandler captures pasted text as a new material.
// POST /v1/materials/text
// Returns 201 Created with the captured material.
func (h *MaterialHandler) CreateTextHandler(c *gin.Context) {
	var req dto.CreateTextMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	material, err := h.materialUseCase.CreateFromText(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapMaterialToResponse(material))
}

// CreateURLHandler fetches a page through the security gate and captures it.
// POST /v1/materials/url
// Returns 201 Created, or 400 when the URL fails the gate.
func (h *MaterialHandler) CreateURLHandler(c *gin.Context) {
	var req dto.CreateURLMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	material, err := h.materialUseCase.CreateFromURL(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapMaterialToResponse(material))
}

// FetchImageHandler retrieves a remote image through the security gate and
// returns its bytes for client-side handling.
// POST /v1/materials/image
// Returns 200 OK, or 400 when the URL fails the gate.
func (h *MaterialHandler) FetchImageHandler(c *gin.Context) {
	var req dto.FetchImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	image, err := h.materialUseCase.FetchImage(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapImageToResponse(image))
}

// UpdateTagsHandler relabels a batch of materials.
// PUT /v1/materials/tags
// Returns 200 OK with the number of materials updated.
func (h *MaterialHandler) UpdateTagsHandler(c *gin.Context) {
	var req dto.UpdateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	updated, err := h.materialUseCase.UpdateTags(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateTagsResponse{UpdatedCount: updated})
}

// ListHandler lists active materials with pagination and an optional
// source_type filter.
// GET /v1/materials?source_type=text&offset=0&limit=50
func (h *MaterialHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	materials, err := h.materialUseCase.List(
		c.Request.Context(),
		c.Query("source_type"),
		offset,
		limit,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMaterialsToListResponse(materials))
}

// GetHandler retrieves an active material by id.
// GET /v1/materials/:id
func (h *MaterialHandler) GetHandler(c *gin.Context) {
	materialID, ok := h.parseID(c)
	if !ok {
		return
	}

	material, err := h.materialUseCase.Get(c.Request.Context(), materialID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMaterialToResponse(material))
}

// DeleteHandler moves a material to the recycle bin.
// DELETE /v1/materials/:id
// Returns 204 No Content.
func (h *MaterialHandler) DeleteHandler(c *gin.Context) {
	materialID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.materialUseCase.SoftDelete(c.Request.Context(), materialID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreHandler moves a material out of the recycle bin.
// POST /v1/materials/:id/restore
// Returns 204 No Content.
func (h *MaterialHandler) RestoreHandler(c *gin.Context) {
	materialID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.materialUseCase.Restore(c.Request.Context(), materialID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// PermanentDeleteHandler removes a recycle-bin material for good.
// DELETE /v1/materials/:id/permanent
// Returns 204 No Content, or 409 when the material is still active.
func (h *MaterialHandler) PermanentDeleteHandler(c *gin.Context) {
	materialID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.materialUseCase.PermanentDelete(c.Request.Context(), materialID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// RecycleBinHandler lists soft-deleted materials.
// GET /v1/materials/recycle-bin
func (h *MaterialHandler) RecycleBinHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	materials, err := h.materialUseCase.ListRecycleBin(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMaterialsToListResponse(materials))
}

// parseID extracts and validates the material id path parameter.
func (h *MaterialHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid material id: must be a UUID"),
			h.logger,
		)
		return uuid.Nil, false
	}
	return materialID, true
}
