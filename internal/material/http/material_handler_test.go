package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/contenthub/backend/internal/errors"
	"github.com/contenthub/backend/internal/fetch"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
	"github.com/contenthub/backend/internal/material/http/dto"
	"github.com/contenthub/backend/internal/material/http/mocks"
)

func setupMaterialRouter(mockUseCase *mocks.MockMaterialUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewMaterialHandler(mockUseCase, nil)

	router := gin.New()
	router.POST("/v1/materials/text", handler.CreateTextHandler)
	router.POST("/v1/materials/url", handler.CreateURLHandler)
	router.POST("/v1/materials/image", handler.FetchImageHandler)
	router.PUT("/v1/materials/tags", handler.UpdateTagsHandler)
	router.GET("/v1/materials", handler.ListHandler)
	router.GET("/v1/materials/recycle-bin", handler.RecycleBinHandler)
	router.GET("/v1/materials/:id", handler.GetHandler)
	router.DELETE("/v1/materials/:id", handler.DeleteHandler)
	router.POST("/v1/materials/:id/restore", handler.RestoreHandler)
	router.DELETE("/v1/materials/:id/permanent", handler.PermanentDeleteHandler)
	return router
}

func newMaterial(sourceType materialDomain.SourceType) *materialDomain.Material {
	now := time.Now().UTC()
	return &materialDomain.Material{
		ID:            uuid.Must(uuid.NewV7()),
		Title:         "Captured",
		Content:       "content",
		ContentLength: 7,
		SourceType:    sourceType,
		Tags:          []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestMaterialHandler_CreateText(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		material := newMaterial(materialDomain.SourceTypeText)
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("CreateFromText", mock.Anything, mock.MatchedBy(
			func(input *materialDomain.CreateTextMaterialInput) bool {
				return input.Content == "content"
			},
		)).Return(material, nil).Once()

		router := setupMaterialRouter(mockUseCase)
		body, _ := json.Marshal(dto.CreateTextMaterialRequest{Content: "content"})
		req := httptest.NewRequest(http.MethodPost, "/v1/materials/text", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.MaterialResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, material.ID.String(), resp.ID)
		assert.Equal(t, "text", resp.SourceType)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("UnprocessableEntity_BlankContent", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("CreateFromText", mock.Anything, mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.ErrInvalidInput, "content: must not be blank")).
			Once()

		router := setupMaterialRouter(mockUseCase)
		body, _ := json.Marshal(dto.CreateTextMaterialRequest{Content: " "})
		req := httptest.NewRequest(http.MethodPost, "/v1/materials/text", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestMaterialHandler_CreateURL(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		material := newMaterial(materialDomain.SourceTypeURL)
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("CreateFromURL", mock.Anything, mock.Anything).
			Return(material, nil).Once()

		router := setupMaterialRouter(mockUseCase)
		body, _ := json.Marshal(dto.CreateURLMaterialRequest{URL: "https://cdn.example.com/a"})
		req := httptest.NewRequest(http.MethodPost, "/v1/materials/url", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("BadRequest_GateRejection", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("CreateFromURL", mock.Anything, mock.Anything).
			Return(nil, apperrors.Wrap(
				apperrors.ErrSecurityValidation,
				"domain evil.example.net is not allow-listed",
			)).Once()

		router := setupMaterialRouter(mockUseCase)
		body, _ := json.Marshal(dto.CreateURLMaterialRequest{URL: "https://evil.example.net/x"})
		req := httptest.NewRequest(http.MethodPost, "/v1/materials/url", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "security_validation")
	})
}

func TestMaterialHandler_List(t *testing.T) {
	mockUseCase := new(mocks.MockMaterialUseCase)
	mockUseCase.On("List", mock.Anything, "text", 0, 50).
		Return([]*materialDomain.Material{newMaterial(materialDomain.SourceTypeText)}, nil).Once()

	router := setupMaterialRouter(mockUseCase)
	req := httptest.NewRequest(http.MethodGet, "/v1/materials?source_type=text", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListMaterialsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	mockUseCase.AssertExpectations(t)
}

func TestMaterialHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		material := newMaterial(materialDomain.SourceTypeText)
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("Get", mock.Anything, material.ID).Return(material, nil).Once()

		router := setupMaterialRouter(mockUseCase)
		req := httptest.NewRequest(http.MethodGet, "/v1/materials/"+material.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("UnprocessableEntity_BadID", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)

		router := setupMaterialRouter(mockUseCase)
		req := httptest.NewRequest(http.MethodGet, "/v1/materials/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Get")
	})

	t.Run("NotFound", func(t *testing.T) {
		materialID := uuid.Must(uuid.NewV7())
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("Get", mock.Anything, materialID).
			Return(nil, materialDomain.ErrMaterialNotFound).Once()

		router := setupMaterialRouter(mockUseCase)
		req := httptest.NewRequest(http.MethodGet, "/v1/materials/"+materialID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMaterialHandler_RecycleBinLifecycle(t *testing.T) {
	materialID := uuid.Must(uuid.NewV7())

	t.Run("SoftDelete", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("SoftDelete", mock.Anything, materialID).Return(nil).Once()

		router := setupMaterialRouter(mockUseCase)
		req := httptest.NewRequest(http.MethodDelete, "/v1/materials/"+materialID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Restore", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("Restore", mock.Anything, materialID).Return(nil).Once()

		router := setupMaterialRouter(mockUseCase)
		req := httptest.NewRequest(
			http.MethodPost,
			"/v1/materials/"+materialID.String()+"/restore",
			nil,
		)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("PermanentDelete_ConflictWhenActive", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("PermanentDelete", mock.Anything, materialID).
			Return(materialDomain.ErrMaterialNotDeleted).Once()

		router := setupMaterialRouter(mockUseCase)
		req := httptest.NewRequest(
			http.MethodDelete,
			"/v1/materials/"+materialID.String()+"/permanent",
			nil,
		)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("RecycleBinList", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("ListRecycleBin", mock.Anything, 0, 50).
			Return([]*materialDomain.Material{}, nil).Once()

		router := setupMaterialRouter(mockUseCase)
		req := httptest.NewRequest(http.MethodGet, "/v1/materials/recycle-bin", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ListMaterialsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data)
		mockUseCase.AssertExpectations(t)
	})
}

func TestMaterialHandler_FetchImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("FetchImage", mock.Anything, mock.MatchedBy(
			func(input *materialDomain.FetchImageInput) bool {
				return input.URL == "https://example.com/chart.png"
			},
		)).Return(&fetch.Image{Data: []byte("png-bytes"), ContentType: "image/png"}, nil).Once()

		router := setupMaterialRouter(mockUseCase)
		body, _ := json.Marshal(dto.FetchImageRequest{URL: "https://example.com/chart.png"})
		req := httptest.NewRequest(http.MethodPost, "/v1/materials/image", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ImageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "image/png", resp.ContentType)
		assert.Equal(t, len("png-bytes"), resp.Size)
		assert.Equal(t, []byte("png-bytes"), resp.Data)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("BadRequest_GateRejection", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("FetchImage", mock.Anything, mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.ErrSecurityValidation, "domain is not allowed")).
			Once()

		router := setupMaterialRouter(mockUseCase)
		body, _ := json.Marshal(dto.FetchImageRequest{URL: "https://evil.test/x.png"})
		req := httptest.NewRequest(http.MethodPost, "/v1/materials/image", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMaterialHandler_UpdateTags(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ids := []uuid.UUID{uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())}
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("UpdateTags", mock.Anything, mock.MatchedBy(
			func(input *materialDomain.UpdateTagsInput) bool {
				return len(input.MaterialIDs) == 2 && len(input.Tags) == 1
			},
		)).Return(2, nil).Once()

		router := setupMaterialRouter(mockUseCase)
		body, _ := json.Marshal(dto.UpdateTagsRequest{MaterialIDs: ids, Tags: []string{"go"}})
		req := httptest.NewRequest(http.MethodPut, "/v1/materials/tags", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.UpdateTagsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.UpdatedCount)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("UnprocessableEntity_NoIDs", func(t *testing.T) {
		mockUseCase := new(mocks.MockMaterialUseCase)
		mockUseCase.On("UpdateTags", mock.Anything, mock.Anything).
			Return(0, apperrors.Wrap(apperrors.ErrInvalidInput, "material_ids: cannot be blank")).
			Once()

		router := setupMaterialRouter(mockUseCase)
		body, _ := json.Marshal(dto.UpdateTagsRequest{Tags: []string{"go"}})
		req := httptest.NewRequest(http.MethodPut, "/v1/materials/tags", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
