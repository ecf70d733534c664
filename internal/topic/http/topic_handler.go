// Package http provides HTTP handlers for topic operations: hand-written
// topics and refiner-produced topics derived from captured materials.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/httputil"
	"github.com/contenthub/backend/internal/topic/http/dto"
	topicUseCase "github.com/contenthub/backend/internal/topic/usecase"
)

// TopicHandler handles HTTP requests for topic operations.
type TopicHandler struct {
	topicUseCase topicUseCase.TopicUseCase
	logger       *slog.Logger
}

// NewTopicHandler creates a new topic handler with required dependencies.
func NewTopicHandler(useCase topicUseCase.TopicUseCase, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		topicUseCase: useCase,
		logger:       logger,
	}
}

// CreateHandler stores a hand-written topic.
// POST /v1/topics
// Returns 201 Created with the stored topic.
func (h *TopicHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	materialID, ok := h.parseMaterialID(c, req.MaterialID)
	if !ok {
		return
	}

	topic, err := h.topicUseCase.Create(c.Request.Context(), req.ToInput(materialID))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTopicToResponse(topic))
}

// RefineHandler runs a material through the content refiner and stores the
// resulting topic.
// POST /v1/topics/refine
// Returns 201 Created, 422 when the refiner credential is missing, or 502
// when the refiner fails.
func (h *TopicHandler) RefineHandler(c *gin.Context) {
	var req dto.RefineTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	materialID, ok := h.parseMaterialID(c, req.MaterialID)
	if !ok {
		return
	}

	topic, err := h.topicUseCase.Refine(c.Request.Context(), req.ToInput(materialID))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTopicToResponse(topic))
}

// DiscoverHandler runs a digest of the material library through the refiner
// and returns topic ideas without persisting anything.
// POST /v1/topics/discover
// Returns 200 OK, 422 when the refiner credential is missing, or 502 when
// the refiner fails.
func (h *TopicHandler) DiscoverHandler(c *gin.Context) {
	inspiration, err := h.topicUseCase.Discover(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInspirationToResponse(inspiration))
}

// ListHandler lists topics with pagination and an optional material filter.
// GET /v1/topics?material_id=...&offset=0&limit=50
func (h *TopicHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var materialID *uuid.UUID
	if raw := c.Query("material_id"); raw != "" {
		parsed, ok := h.parseMaterialID(c, raw)
		if !ok {
			return
		}
		materialID = &parsed
	}

	topics, err := h.topicUseCase.List(c.Request.Context(), materialID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTopicsToListResponse(topics))
}

// GetHandler retrieves a topic by id.
// GET /v1/topics/:id
func (h *TopicHandler) GetHandler(c *gin.Context) {
	topicID, ok := h.parseID(c)
	if !ok {
		return
	}

	topic, err := h.topicUseCase.Get(c.Request.Context(), topicID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTopicToResponse(topic))
}

// UpdateHandler rewrites a topic's title, content and tags.
// PUT /v1/topics/:id
func (h *TopicHandler) UpdateHandler(c *gin.Context) {
	topicID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	topic, err := h.topicUseCase.Update(c.Request.Context(), topicID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTopicToResponse(topic))
}

// DeleteHandler removes a topic.
// DELETE /v1/topics/:id
// Returns 204 No Content.
func (h *TopicHandler) DeleteHandler(c *gin.Context) {
	topicID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.topicUseCase.Delete(c.Request.Context(), topicID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID extracts and validates the topic id path parameter.
func (h *TopicHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid topic id: must be a UUID"),
			h.logger,
		)
		return uuid.Nil, false
	}
	return topicID, true
}

// parseMaterialID validates a material id taken from the body or query string.
func (h *TopicHandler) parseMaterialID(c *gin.Context, raw string) (uuid.UUID, bool) {
	materialID, err := uuid.Parse(raw)
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
