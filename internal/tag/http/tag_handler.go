// Package http provides HTTP handlers for the tag index.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/backend/internal/httputil"
	"github.com/contenthub/backend/internal/tag/http/dto"
	tagUseCase "github.com/contenthub/backend/internal/tag/usecase"
)

// TagHandler handles HTTP requests for tag operations.
type TagHandler struct {
	tagUseCase tagUseCase.TagUseCase
	logger     *slog.Logger
}

// NewTagHandler creates a new tag handler with required dependencies.
func NewTagHandler(useCase tagUseCase.TagUseCase, logger *slog.Logger) *TagHandler {
	return &TagHandler{
		tagUseCase: useCase,
		logger:     logger,
	}
}

// CreateHandler registers a new tag.
// POST /v1/tags
// Returns 201 Created, or 409 when the name is already taken.
func (h *TagHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	tag, err := h.tagUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTagToResponse(tag))
}

// ListHandler returns the whole tag index, most used first.
// GET /v1/tags
func (h *TagHandler) ListHandler(c *gin.Context) {
	tags, err := h.tagUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTagsToListResponse(tags))
}
