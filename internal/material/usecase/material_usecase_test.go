package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/contenthub/backend/internal/errors"
	"github.com/contenthub/backend/internal/fetch"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
	"github.com/contenthub/backend/internal/material/usecase/mocks"
)

// passthroughTxManager runs the transactional function without a database.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// newTestUseCase builds a use case whose image fetcher and tag recorder are
// unused by the test at hand.
func newTestUseCase(repo MaterialRepository, pageFetcher PageFetcher) MaterialUseCase {
	return NewMaterialUseCase(
		repo,
		pageFetcher,
		new(mocks.MockImageFetcher),
		new(mocks.MockTagRecorder),
		passthroughTxManager{},
	)
}

func TestMaterialUseCase_CreateFromText(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *materialDomain.Material) bool {
			return m.Content == "pasted text" &&
				m.SourceType == materialDomain.SourceTypeText &&
				m.SourceURL == nil &&
				m.ContentLength == 11
		})).Return(nil).Once()

		uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))
		material, err := uc.CreateFromText(ctx, &materialDomain.CreateTextMaterialInput{
			Title:   "Notes",
			Content: "pasted text",
			Tags:    []string{"inbox"},
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, material.ID)
		assert.Equal(t, []string{"inbox"}, material.Tags)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_BlankContent", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)

		uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))
		material, err := uc.CreateFromText(ctx, &materialDomain.CreateTextMaterialInput{
			Content: "   ",
		})

		assert.Nil(t, material)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestMaterialUseCase_CreateFromURL(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NormalizesSourceURL", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)
		mockFetcher := new(mocks.MockPageFetcher)

		mockFetcher.On("FetchPage", mock.Anything, "https://cdn.example.com/Article/../post").
			Return(&fetch.Page{
				URL:     "https://cdn.example.com/Article/../post",
				Title:   "A Post",
				Content: "readable content",
			}, nil).Once()

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *materialDomain.Material) bool {
			return m.SourceType == materialDomain.SourceTypeURL &&
				m.Title == "A Post" &&
				m.SourceURL != nil &&
				*m.SourceURL == "https://cdn.example.com/post"
		})).Return(nil).Once()

		uc := newTestUseCase(mockRepo, mockFetcher)
		material, err := uc.CreateFromURL(ctx, &materialDomain.CreateURLMaterialInput{
			URL: "https://cdn.example.com/Article/../post",
		})

		require.NoError(t, err)
		assert.Equal(t, "readable content", material.Content)
		mockRepo.AssertExpectations(t)
		mockFetcher.AssertExpectations(t)
	})

	t.Run("Error_GateRejectionSurfacesUnmodified", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)
		mockFetcher := new(mocks.MockPageFetcher)

		gateErr := apperrors.Wrap(apperrors.ErrSecurityValidation, "domain evil.example.net is not allow-listed")
		mockFetcher.On("FetchPage", mock.Anything, "https://evil.example.net/x").
			Return(nil, gateErr).Once()

		uc := newTestUseCase(mockRepo, mockFetcher)
		material, err := uc.CreateFromURL(ctx, &materialDomain.CreateURLMaterialInput{
			URL: "https://evil.example.net/x",
		})

		assert.Nil(t, material)
		assert.ErrorIs(t, err, apperrors.ErrSecurityValidation)
		// No partial capture on a gate rejection.
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_InvalidURLScheme", func(t *testing.T) {
		mockFetcher := new(mocks.MockPageFetcher)

		uc := newTestUseCase(new(mocks.MockMaterialRepository), mockFetcher)
		material, err := uc.CreateFromURL(ctx, &materialDomain.CreateURLMaterialInput{
			URL: "ftp://cdn.example.com/file",
		})

		assert.Nil(t, material)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockFetcher.AssertNotCalled(t, "FetchPage")
	})
}

func TestMaterialUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_WithSourceTypeFilter", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)
		mockRepo.On("List", mock.Anything, "url", 0, 50).
			Return([]*materialDomain.Material{{Title: "A"}}, nil).Once()

		uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))
		materials, err := uc.List(ctx, "url", 0, 50)

		require.NoError(t, err)
		assert.Len(t, materials, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_UnsupportedSourceType", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)

		uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))
		materials, err := uc.List(ctx, "pdf", 0, 50)

		assert.Nil(t, materials)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "List")
	})
}

func TestMaterialUseCase_Get(t *testing.T) {
	ctx := context.Background()
	materialID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)
		mockRepo.On("GetByID", mock.Anything, materialID).
			Return(&materialDomain.Material{ID: materialID}, nil).Once()

		uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))
		material, err := uc.Get(ctx, materialID)

		require.NoError(t, err)
		assert.Equal(t, materialID, material.ID)
	})

	t.Run("NotFound_WhenInRecycleBin", func(t *testing.T) {
		deletedAt := time.Now().UTC()
		mockRepo := new(mocks.MockMaterialRepository)
		mockRepo.On("GetByID", mock.Anything, materialID).
			Return(&materialDomain.Material{ID: materialID, DeletedAt: &deletedAt}, nil).Once()

		uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))
		material, err := uc.Get(ctx, materialID)

		assert.Nil(t, material)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestMaterialUseCase_PermanentDelete(t *testing.T) {
	ctx := context.Background()
	materialID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		deletedAt := time.Now().UTC()
		mockRepo := new(mocks.MockMaterialRepository)
		mockRepo.On("GetByID", mock.Anything, materialID).
			Return(&materialDomain.Material{ID: materialID, DeletedAt: &deletedAt}, nil).Once()
		mockRepo.On("Delete", mock.Anything, materialID).Return(nil).Once()

		uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))
		err := uc.PermanentDelete(ctx, materialID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Conflict_WhenStillActive", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)
		mockRepo.On("GetByID", mock.Anything, materialID).
			Return(&materialDomain.Material{ID: materialID}, nil).Once()

		uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))
		err := uc.PermanentDelete(ctx, materialID)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}

func TestMaterialUseCase_RecycleBinLifecycle(t *testing.T) {
	ctx := context.Background()
	materialID := uuid.Must(uuid.NewV7())

	mockRepo := new(mocks.MockMaterialRepository)
	mockRepo.On("SoftDelete", mock.Anything, materialID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	mockRepo.On("Restore", mock.Anything, materialID).Return(nil).Once()
	mockRepo.On("ListDeleted", mock.Anything, 0, 50).
		Return([]*materialDomain.Material{}, nil).Once()

	uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))

	assert.NoError(t, uc.SoftDelete(ctx, materialID))
	assert.NoError(t, uc.Restore(ctx, materialID))

	bin, err := uc.ListRecycleBin(ctx, 0, 50)
	require.NoError(t, err)
	assert.Empty(t, bin)
	mockRepo.AssertExpectations(t)
}

func TestMaterialUseCase_FetchImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockFetcher := new(mocks.MockImageFetcher)
		mockFetcher.On("FetchImage", mock.Anything, "https://example.com/chart.png").
			Return(&fetch.Image{Data: []byte{0x89, 0x50}, ContentType: "image/png"}, nil).Once()

		uc := NewMaterialUseCase(
			new(mocks.MockMaterialRepository),
			new(mocks.MockPageFetcher),
			mockFetcher,
			new(mocks.MockTagRecorder),
			passthroughTxManager{},
		)
		image, err := uc.FetchImage(ctx, &materialDomain.FetchImageInput{
			URL: "https://example.com/chart.png",
		})

		require.NoError(t, err)
		assert.Equal(t, "image/png", image.ContentType)
		assert.Equal(t, []byte{0x89, 0x50}, image.Data)
		mockFetcher.AssertExpectations(t)
	})

	t.Run("Error_GateRejectionSurfaces", func(t *testing.T) {
		mockFetcher := new(mocks.MockImageFetcher)
		mockFetcher.On("FetchImage", mock.Anything, "https://evil.test/x.png").
			Return(nil, apperrors.ErrSecurityValidation).Once()

		uc := NewMaterialUseCase(
			new(mocks.MockMaterialRepository),
			new(mocks.MockPageFetcher),
			mockFetcher,
			new(mocks.MockTagRecorder),
			passthroughTxManager{},
		)
		image, err := uc.FetchImage(ctx, &materialDomain.FetchImageInput{
			URL: "https://evil.test/x.png",
		})

		assert.Nil(t, image)
		assert.ErrorIs(t, err, apperrors.ErrSecurityValidation)
	})

	t.Run("Error_InvalidURL", func(t *testing.T) {
		mockFetcher := new(mocks.MockImageFetcher)

		uc := NewMaterialUseCase(
			new(mocks.MockMaterialRepository),
			new(mocks.MockPageFetcher),
			mockFetcher,
			new(mocks.MockTagRecorder),
			passthroughTxManager{},
		)
		image, err := uc.FetchImage(ctx, &materialDomain.FetchImageInput{URL: "not-a-url"})

		assert.Nil(t, image)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockFetcher.AssertNotCalled(t, "FetchImage")
	})
}

func TestMaterialUseCase_UpdateTags(t *testing.T) {
	ctx := context.Background()
	firstID := uuid.Must(uuid.NewV7())
	secondID := uuid.Must(uuid.NewV7())
	tags := []string{"ai", "go"}

	t.Run("Success_SkipsMissingMaterials", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)
		mockRepo.On("UpdateTags", mock.Anything, firstID, tags, mock.AnythingOfType("time.Time")).
			Return(nil).Once()
		mockRepo.On("UpdateTags", mock.Anything, secondID, tags, mock.AnythingOfType("time.Time")).
			Return(apperrors.ErrNotFound).Once()
		mockTags := new(mocks.MockTagRecorder)
		mockTags.On("RecordUsage", mock.Anything, tags).Return(nil).Once()

		uc := NewMaterialUseCase(
			mockRepo,
			new(mocks.MockPageFetcher),
			new(mocks.MockImageFetcher),
			mockTags,
			passthroughTxManager{},
		)
		updated, err := uc.UpdateTags(ctx, &materialDomain.UpdateTagsInput{
			MaterialIDs: []uuid.UUID{firstID, secondID},
			Tags:        tags,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, updated)
		mockRepo.AssertExpectations(t)
		mockTags.AssertExpectations(t)
	})

	t.Run("Success_ClearingTagsSkipsUsageRecording", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)
		mockRepo.On("UpdateTags", mock.Anything, firstID, []string{}, mock.AnythingOfType("time.Time")).
			Return(nil).Once()
		mockTags := new(mocks.MockTagRecorder)

		uc := NewMaterialUseCase(
			mockRepo,
			new(mocks.MockPageFetcher),
			new(mocks.MockImageFetcher),
			mockTags,
			passthroughTxManager{},
		)
		updated, err := uc.UpdateTags(ctx, &materialDomain.UpdateTagsInput{
			MaterialIDs: []uuid.UUID{firstID},
			Tags:        []string{},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, updated)
		mockTags.AssertNotCalled(t, "RecordUsage")
	})

	t.Run("Error_NoMaterialIDs", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)

		uc := newTestUseCase(mockRepo, new(mocks.MockPageFetcher))
		updated, err := uc.UpdateTags(ctx, &materialDomain.UpdateTagsInput{Tags: tags})

		assert.Zero(t, updated)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "UpdateTags")
	})

	t.Run("Error_RepositoryFailureAborts", func(t *testing.T) {
		mockRepo := new(mocks.MockMaterialRepository)
		mockRepo.On("UpdateTags", mock.Anything, firstID, tags, mock.AnythingOfType("time.Time")).
			Return(assert.AnError).Once()
		mockTags := new(mocks.MockTagRecorder)

		uc := NewMaterialUseCase(
			mockRepo,
			new(mocks.MockPageFetcher),
			new(mocks.MockImageFetcher),
			mockTags,
			passthroughTxManager{},
		)
		updated, err := uc.UpdateTags(ctx, &materialDomain.UpdateTagsInput{
			MaterialIDs: []uuid.UUID{firstID},
			Tags:        tags,
		})

		assert.Zero(t, updated)
		assert.ErrorIs(t, err, assert.AnError)
		mockTags.AssertNotCalled(t, "RecordUsage")
	})
}
