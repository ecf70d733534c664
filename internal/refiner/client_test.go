package refiner

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/contenthub/backend/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(
		server.URL, "deepseek-chat",
		5*time.Second, 0, testLogger(),
		WithHTTPClient(server.Client()),
	)
}

func completionsResponse(content string) map[string]any {
	return map[string]any{
		"model": "deepseek-chat",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{
			"prompt_tokens":     120,
			"completion_tokens": 80,
			"total_tokens":      200,
		},
	}
}

func TestClient_Refine(t *testing.T) {
	req := &RefineRequest{
		APIKey:  "sk-test-credential",
		Prompt:  "Refine this material into a topic.",
		Content: "raw material text",
	}

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test-credential", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "deepseek-chat", body["model"])

			_ = json.NewEncoder(w).Encode(completionsResponse(
				`{"title":"Refined","content":"refined body","tags":["go"]}`,
			))
		}))
		defer server.Close()

		result, err := newTestClient(server).Refine(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Refined", result.Title)
		assert.Equal(t, "refined body", result.Content)
		assert.Equal(t, []string{"go"}, result.Tags)
		assert.Equal(t, 200, result.Usage.TotalTokens)
	})

	t.Run("Success_MarkdownFencedJSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(completionsResponse(
				"```json\n{\"title\":\"Refined\",\"content\":\"refined body\",\"tags\":[]}\n```",
			))
		}))
		defer server.Close()

		result, err := newTestClient(server).Refine(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "refined body", result.Content)
		assert.Empty(t, result.Tags)
	})

	t.Run("Error_MissingAPIKey", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not be sent without a credential")
		}))
		defer server.Close()

		result, err := newTestClient(server).Refine(context.Background(), &RefineRequest{
			Prompt:  "p",
			Content: "c",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_StatusMapping", func(t *testing.T) {
		tests := []struct {
			name     string
			status   int
			expected error
		}{
			{name: "unauthorized", status: http.StatusUnauthorized, expected: ErrAuth},
			{name: "forbidden", status: http.StatusForbidden, expected: ErrAuth},
			{name: "rate limited", status: http.StatusTooManyRequests, expected: ErrRateLimited},
			{name: "server failure", status: http.StatusInternalServerError, expected: ErrServer},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				server := httptest.NewServer(
					http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						w.WriteHeader(tt.status)
					}),
				)
				defer server.Close()

				result, err := newTestClient(server).Refine(context.Background(), req)

				assert.Nil(t, result)
				assert.ErrorIs(t, err, tt.expected)
				assert.ErrorIs(t, err, apperrors.ErrUpstream)
			})
		}
	})

	t.Run("Error_NonJSONAssistantMessage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(completionsResponse("I could not refine this."))
		}))
		defer server.Close()

		result, err := newTestClient(server).Refine(context.Background(), req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("Error_NoChoices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		result, err := newTestClient(server).Refine(context.Background(), req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestClassifyStatus(t *testing.T) {
	assert.NoError(t, classifyStatus(http.StatusOK))
	assert.ErrorIs(t, classifyStatus(http.StatusBadRequest), ErrInvalidResponse)
	assert.ErrorIs(t, classifyStatus(http.StatusBadGateway), ErrServer)
}
