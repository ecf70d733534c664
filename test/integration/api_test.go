// Package integration provides end-to-end integration tests for the ContentHub API.
// Tests all API endpoints against both PostgreSQL and MySQL databases.
package integration

import (
	"bytes"
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contenthub/backend/internal/app"
	"github.com/contenthub/backend/internal/config"
	materialDTO "github.com/contenthub/backend/internal/material/http/dto"
	"github.com/contenthub/backend/internal/redact"
	settingDTO "github.com/contenthub/backend/internal/setting/http/dto"
	statsDTO "github.com/contenthub/backend/internal/stats/http/dto"
	tagDTO "github.com/contenthub/backend/internal/tag/http/dto"
	"github.com/contenthub/backend/internal/testutil"
	topicDTO "github.com/contenthub/backend/internal/topic/http/dto"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	db        *sql.DB
	server    *httptest.Server
	dbDriver  string
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// generateEncryptionKey creates a fresh base64-encoded 32-byte key for testing.
func generateEncryptionKey() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(fmt.Sprintf("failed to generate encryption key: %v", err))
	}
	return base64.StdEncoding.EncodeToString(key)
}

// setupIntegrationTest initializes all components for integration testing.
func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Setup database
	var db *sql.DB
	var dsn string
	if dbDriver == "postgres" {
		db = testutil.SetupPostgresDB(t)
		dsn = testutil.GetPostgresTestDSN()
	} else {
		db = testutil.SetupMySQLDB(t)
		dsn = testutil.GetMySQLTestDSN()
	}

	// Create configuration
	cfg := &config.Config{
		DBDriver:             dbDriver,
		DBConnectionString:   dsn,
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		ServerHost:           "localhost",
		ServerPort:           8080,
		LogLevel:             "error",
		EncryptionKey:        generateEncryptionKey(),
		FetchTimeout:         5 * time.Second,
		FetchRatePerSec:      2.0,
		FetchBurst:           5,
		RefinerBaseURL:       "http://localhost:1", // never reached in these tests
		RefinerModel:         "deepseek-chat",
		RefinerTimeout:       time.Second,
		RefinerMaxRetries:    0,
	}

	// Create DI container
	container := app.NewContainer(cfg)

	// Setup HTTP server
	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")

	// Get the handler from the server
	// The SetupRouter has already been called by container.HTTPServer()
	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	// Create test server with the handler
	testServer := httptest.NewServer(handler)

	t.Logf("Integration test setup complete for %s", dbDriver)

	return &integrationTestContext{
		container: container,
		db:        db,
		server:    testServer,
		dbDriver:  dbDriver,
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}

	if ctx.container != nil {
		err := ctx.container.Shutdown(context.Background())
		if err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}

	if ctx.db != nil {
		testutil.TeardownDB(t, ctx.db)
	}

	t.Logf("Integration test teardown complete for %s", ctx.dbDriver)
}

// TestIntegration_Health_BasicChecks validates infrastructure health and readiness endpoints.
// Tests health check and database connectivity verification against both PostgreSQL and MySQL.
func TestIntegration_Health_BasicChecks(t *testing.T) {
	// Skip if short mode (integration tests can be slow)
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name     string
		dbDriver string
	}{
		{"PostgreSQL", "postgres"},
		{"MySQL", "mysql"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			// [1/2] Test GET /health - Health check endpoint
			t.Run("01_HealthCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response map[string]string
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "healthy", response["status"])
			})

			// [2/2] Test GET /ready - Readiness check endpoint
			t.Run("02_ReadinessCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/ready", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response map[string]any
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "ready", response["status"])
			})

			t.Logf("All 2 health endpoint tests passed for %s", tc.dbDriver)
		})
	}
}

// TestIntegration_Settings_CompleteFlow tests the settings engine complete lifecycle.
// Validates upsert, single-key reads, list redaction, and encryption at rest for
// sensitive keys.
func TestIntegration_Settings_CompleteFlow(t *testing.T) {
	// Skip if short mode (integration tests can be slow)
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name     string
		dbDriver string
	}{
		{"PostgreSQL", "postgres"},
		{"MySQL", "mysql"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			const (
				plainKey    = "default_prompt_name"
				plainValue  = "summary"
				secretKey   = "deepseek_api_key"
				secretValue = "sk-integration-test-0123456789"
			)

			// [1/6] Test PUT /v1/settings/:key - Upsert a non-sensitive setting
			t.Run("01_UpsertPlainSetting", func(t *testing.T) {
				requestBody := settingDTO.UpsertSettingRequest{Value: plainValue}

				resp, body := ctx.makeRequest(t, http.MethodPut, "/v1/settings/"+plainKey, requestBody)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response settingDTO.SettingResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, plainKey, response.Key)
				assert.Equal(t, plainValue, response.Value)
				assert.False(t, response.Sensitive)
			})

			// [2/6] Test PUT /v1/settings/:key - Upsert a sensitive setting
			t.Run("02_UpsertSensitiveSetting", func(t *testing.T) {
				requestBody := settingDTO.UpsertSettingRequest{Value: secretValue}

				resp, body := ctx.makeRequest(t, http.MethodPut, "/v1/settings/"+secretKey, requestBody)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response settingDTO.SettingResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, secretKey, response.Key)
				assert.True(t, response.Sensitive)
			})

			// [3/6] Test GET /v1/settings/:key - Single-key read returns plaintext
			t.Run("03_GetSensitiveSetting", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/settings/"+secretKey, nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response settingDTO.SettingResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, secretValue, response.Value, "single-key read should decrypt the value")
			})

			// [4/6] Test GET /v1/settings - List redacts sensitive values
			t.Run("04_ListSettings", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/settings", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response settingDTO.ListSettingsResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				require.Len(t, response.Data, 2)

				values := map[string]string{}
				for _, setting := range response.Data {
					values[setting.Key] = setting.Value
				}
				assert.Equal(t, plainValue, values[plainKey])
				assert.Equal(t, redact.Marker, values[secretKey], "sensitive value must be redacted in lists")
			})

			// [5/6] Verify the sensitive value is encrypted at rest
			t.Run("05_VerifyEncryptedAtRest", func(t *testing.T) {
				var stored string
				var err error
				if tc.dbDriver == "postgres" {
					err = ctx.db.QueryRow("SELECT value FROM settings WHERE key = $1", secretKey).Scan(&stored)
				} else {
					err = ctx.db.QueryRow("SELECT `value` FROM settings WHERE `key` = ?", secretKey).Scan(&stored)
				}
				require.NoError(t, err)
				assert.NotEqual(t, secretValue, stored, "sensitive value must not be stored in plaintext")
				assert.NotEmpty(t, stored)
			})

			// [6/6] Test PUT /v1/settings/:key - Update overwrites the value
			t.Run("06_UpdateSetting", func(t *testing.T) {
				requestBody := settingDTO.UpsertSettingRequest{Value: "key_points"}

				resp, _ := ctx.makeRequest(t, http.MethodPut, "/v1/settings/"+plainKey, requestBody)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				getResp, getBody := ctx.makeRequest(t, http.MethodGet, "/v1/settings/"+plainKey, nil)
				assert.Equal(t, http.StatusOK, getResp.StatusCode)

				var response settingDTO.SettingResponse
				err := json.Unmarshal(getBody, &response)
				require.NoError(t, err)
				assert.Equal(t, "key_points", response.Value)
			})

			t.Logf("All 6 settings endpoint tests passed for %s", tc.dbDriver)
		})
	}
}

// TestIntegration_Materials_CompleteFlow tests the material lifecycle including
// the recycle bin: capture, list, soft delete, restore, and permanent delete.
func TestIntegration_Materials_CompleteFlow(t *testing.T) {
	// Skip if short mode (integration tests can be slow)
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name     string
		dbDriver string
	}{
		{"PostgreSQL", "postgres"},
		{"MySQL", "mysql"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			var materialID uuid.UUID

			// [1/8] Test POST /v1/materials/text - Capture pasted text
			t.Run("01_CreateTextMaterial", func(t *testing.T) {
				requestBody := materialDTO.CreateTextMaterialRequest{
					Title:   "Integration Test Material",
					Content: "Some pasted content worth keeping around.",
					Tags:    []string{"integration", "go"},
				}

				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/materials/text", requestBody)
				assert.Equal(t, http.StatusCreated, resp.StatusCode)

				var response materialDTO.MaterialResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.NotEmpty(t, response.ID)
				assert.Equal(t, "Integration Test Material", response.Title)
				assert.Equal(t, "text", response.SourceType)
				assert.Equal(t, len("Some pasted content worth keeping around."), response.ContentLength)
				assert.ElementsMatch(t, []string{"integration", "go"}, response.Tags)

				parsedID, err := uuid.Parse(response.ID)
				require.NoError(t, err)
				materialID = parsedID
			})

			// [2/8] Test GET /v1/materials - List active materials
			t.Run("02_ListMaterials", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/materials", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response materialDTO.ListMaterialsResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				require.Len(t, response.Data, 1)
				assert.Equal(t, materialID.String(), response.Data[0].ID)
			})

			// [3/8] Test GET /v1/materials/:id - Get material by ID
			t.Run("03_GetMaterial", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/materials/"+materialID.String(), nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response materialDTO.MaterialResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, materialID.String(), response.ID)
				assert.Nil(t, response.DeletedAt)
			})

			// [4/8] Test DELETE /v1/materials/:id - Soft delete into recycle bin
			t.Run("04_SoftDeleteMaterial", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodDelete, "/v1/materials/"+materialID.String(), nil)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)
				assert.Empty(t, body)
			})

			// [5/8] Test GET /v1/materials/recycle-bin - Deleted material is listed
			t.Run("05_RecycleBin", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/materials/recycle-bin", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response materialDTO.ListMaterialsResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				require.Len(t, response.Data, 1)
				assert.Equal(t, materialID.String(), response.Data[0].ID)
				assert.NotNil(t, response.Data[0].DeletedAt)

				// The active list must not show it anymore
				listResp, listBody := ctx.makeRequest(t, http.MethodGet, "/v1/materials", nil)
				assert.Equal(t, http.StatusOK, listResp.StatusCode)

				var listResponse materialDTO.ListMaterialsResponse
				err = json.Unmarshal(listBody, &listResponse)
				require.NoError(t, err)
				assert.Empty(t, listResponse.Data)
			})

			// [6/8] Test POST /v1/materials/:id/restore - Restore from recycle bin
			t.Run("06_RestoreMaterial", func(t *testing.T) {
				resp, _ := ctx.makeRequest(
					t,
					http.MethodPost,
					"/v1/materials/"+materialID.String()+"/restore",
					nil,
				)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)

				getResp, getBody := ctx.makeRequest(t, http.MethodGet, "/v1/materials/"+materialID.String(), nil)
				assert.Equal(t, http.StatusOK, getResp.StatusCode)

				var response materialDTO.MaterialResponse
				err := json.Unmarshal(getBody, &response)
				require.NoError(t, err)
				assert.Nil(t, response.DeletedAt, "restored material should be active again")
			})

			// [7/8] Test DELETE /v1/materials/:id/permanent - Permanent delete
			t.Run("07_PermanentDeleteMaterial", func(t *testing.T) {
				// Soft delete first, the permanent delete only applies to recycled rows
				resp, _ := ctx.makeRequest(t, http.MethodDelete, "/v1/materials/"+materialID.String(), nil)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)

				resp, body := ctx.makeRequest(
					t,
					http.MethodDelete,
					"/v1/materials/"+materialID.String()+"/permanent",
					nil,
				)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)
				assert.Empty(t, body)
			})

			// [8/8] Test GET /v1/materials/:id - Verify material is gone
			t.Run("08_VerifyMaterialGone", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodGet, "/v1/materials/"+materialID.String(), nil)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			})

			t.Logf("All 8 material endpoint tests passed for %s", tc.dbDriver)
		})
	}
}

// TestIntegration_Topics_CompleteFlow tests hand-written topic management tied
// to a source material, plus the usage stats endpoint.
func TestIntegration_Topics_CompleteFlow(t *testing.T) {
	// Skip if short mode (integration tests can be slow)
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name     string
		dbDriver string
	}{
		{"PostgreSQL", "postgres"},
		{"MySQL", "mysql"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			var (
				materialID uuid.UUID
				topicID    uuid.UUID
			)

			// [1/7] Create the source material the topics will reference
			t.Run("01_CreateSourceMaterial", func(t *testing.T) {
				requestBody := materialDTO.CreateTextMaterialRequest{
					Title:   "Source Material",
					Content: "Raw content the topics are derived from.",
				}

				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/materials/text", requestBody)
				assert.Equal(t, http.StatusCreated, resp.StatusCode)

				var response materialDTO.MaterialResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)

				parsedID, err := uuid.Parse(response.ID)
				require.NoError(t, err)
				materialID = parsedID
			})

			// [2/7] Test POST /v1/topics - Create a hand-written topic
			t.Run("02_CreateTopic", func(t *testing.T) {
				requestBody := topicDTO.CreateTopicRequest{
					MaterialID: materialID.String(),
					Title:      "Hand-written Topic",
					Content:    "My own notes about the material.",
					Tags:       []string{"notes"},
				}

				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/topics", requestBody)
				assert.Equal(t, http.StatusCreated, resp.StatusCode)

				var response topicDTO.TopicResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.NotEmpty(t, response.ID)
				assert.Equal(t, materialID.String(), response.MaterialID)
				assert.Equal(t, "manual", response.PromptName)

				parsedID, err := uuid.Parse(response.ID)
				require.NoError(t, err)
				topicID = parsedID
			})

			// [3/7] Test GET /v1/topics?material_id= - List topics filtered by material
			t.Run("03_ListTopicsByMaterial", func(t *testing.T) {
				resp, body := ctx.makeRequest(
					t,
					http.MethodGet,
					"/v1/topics?material_id="+materialID.String(),
					nil,
				)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response topicDTO.ListTopicsResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				require.Len(t, response.Data, 1)
				assert.Equal(t, topicID.String(), response.Data[0].ID)
			})

			// [4/7] Test PUT /v1/topics/:id - Update topic
			t.Run("04_UpdateTopic", func(t *testing.T) {
				requestBody := topicDTO.UpdateTopicRequest{
					Title:   "Updated Topic",
					Content: "Revised notes.",
					Tags:    []string{"notes", "revised"},
				}

				resp, body := ctx.makeRequest(t, http.MethodPut, "/v1/topics/"+topicID.String(), requestBody)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response topicDTO.TopicResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "Updated Topic", response.Title)
				assert.ElementsMatch(t, []string{"notes", "revised"}, response.Tags)
			})

			// [5/7] Test POST /v1/topics/refine - Refinement without a configured
			// API key is rejected before any upstream call
			t.Run("05_RefineWithoutAPIKey", func(t *testing.T) {
				requestBody := topicDTO.RefineTopicRequest{
					MaterialID: materialID.String(),
				}

				resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/topics/refine", requestBody)
				assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			})

			// [6/7] Test GET /v1/usage-stats - Empty without any refinement calls
			t.Run("06_UsageStatsEmpty", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/usage-stats", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response statsDTO.ListUsageStatsResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Empty(t, response.Data)
			})

			// [7/7] Test DELETE /v1/topics/:id - Delete topic
			t.Run("07_DeleteTopic", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodDelete, "/v1/topics/"+topicID.String(), nil)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)
				assert.Empty(t, body)

				getResp, _ := ctx.makeRequest(t, http.MethodGet, "/v1/topics/"+topicID.String(), nil)
				assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
			})

			t.Logf("All 7 topic endpoint tests passed for %s", tc.dbDriver)
		})
	}
}

// TestIntegration_Tags_CompleteFlow tests the tag index together with bulk
// material relabeling and usage counting.
func TestIntegration_Tags_CompleteFlow(t *testing.T) {
	// Skip if short mode (integration tests can be slow)
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testCases := []struct {
		name     string
		dbDriver string
	}{
		{"PostgreSQL", "postgres"},
		{"MySQL", "mysql"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			var materialID uuid.UUID

			// [1/5] Test POST /v1/tags - Register a tag with a custom color
			t.Run("01_CreateTag", func(t *testing.T) {
				requestBody := tagDTO.CreateTagRequest{Name: "golang", Color: "#00add8"}

				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/tags", requestBody)
				assert.Equal(t, http.StatusCreated, resp.StatusCode)

				var response tagDTO.TagResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "golang", response.Name)
				assert.Equal(t, "#00add8", response.Color)
				assert.Zero(t, response.UsageCount)
			})

			// [2/5] Test POST /v1/tags - Duplicate names conflict
			t.Run("02_CreateTagConflict", func(t *testing.T) {
				requestBody := tagDTO.CreateTagRequest{Name: "golang"}

				resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/tags", requestBody)
				assert.Equal(t, http.StatusConflict, resp.StatusCode)
			})

			// [3/5] Capture a material to relabel
			t.Run("03_CreateMaterial", func(t *testing.T) {
				requestBody := materialDTO.CreateTextMaterialRequest{
					Title:   "Tagged Material",
					Content: "content worth relabeling",
					Tags:    []string{"inbox"},
				}

				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/materials/text", requestBody)
				assert.Equal(t, http.StatusCreated, resp.StatusCode)

				var response materialDTO.MaterialResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)

				parsedID, err := uuid.Parse(response.ID)
				require.NoError(t, err)
				materialID = parsedID
			})

			// [4/5] Test PUT /v1/materials/tags - Bulk relabel, missing ids skipped
			t.Run("04_UpdateMaterialTags", func(t *testing.T) {
				requestBody := materialDTO.UpdateTagsRequest{
					MaterialIDs: []uuid.UUID{materialID, uuid.Must(uuid.NewV7())},
					Tags:        []string{"golang", "reading"},
				}

				resp, body := ctx.makeRequest(t, http.MethodPut, "/v1/materials/tags", requestBody)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response materialDTO.UpdateTagsResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, 1, response.UpdatedCount)

				getResp, getBody := ctx.makeRequest(t, http.MethodGet, "/v1/materials/"+materialID.String(), nil)
				assert.Equal(t, http.StatusOK, getResp.StatusCode)

				var material materialDTO.MaterialResponse
				err = json.Unmarshal(getBody, &material)
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"golang", "reading"}, material.Tags)
			})

			// [5/5] Test GET /v1/tags - Usage counts reflect the relabel
			t.Run("05_ListTags", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/tags", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response tagDTO.ListTagsResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)

				counts := make(map[string]int64)
				for _, tag := range response.Data {
					counts[tag.Name] = tag.UsageCount
				}
				assert.Equal(t, int64(1), counts["golang"])
				assert.Equal(t, int64(1), counts["reading"])
			})

			t.Logf("All 5 tag endpoint tests passed for %s", tc.dbDriver)
		})
	}
}
