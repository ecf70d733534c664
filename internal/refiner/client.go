package refiner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	apperrors "github.com/contenthub/backend/internal/errors"
)

// maxResponseBytes caps a provider response at 4 MiB.
const maxResponseBytes = 4 << 20

// Client is an OpenAI-compatible chat-completions adapter.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the outbound HTTP client. Intended for tests.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a refiner client for the given provider endpoint.
// Transient provider failures (connection errors, 5xx) are retried with
// backoff up to maxRetries; 429 is surfaced immediately as ErrRateLimited.
func NewClient(
	baseURL, model string,
	timeout time.Duration,
	maxRetries int,
	logger *slog.Logger,
	opts ...ClientOption,
) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = maxRetries
	retryClient.RetryWaitMin = time.Second
	retryClient.RetryWaitMax = 15 * time.Second
	retryClient.Logger = nil
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err == nil && resp.StatusCode == http.StatusTooManyRequests {
			return false, nil
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	httpClient := retryClient.StandardClient()
	httpClient.Timeout = timeout

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chat-completions wire types.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Model string `json:"model"`
}

// refinedPayload is the JSON document the model is instructed to answer with.
type refinedPayload struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Refine sends one refinement call and parses the structured result.
func (c *Client) Refine(ctx context.Context, req *RefineRequest) (*RefineResult, error) {
	if req.APIKey == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "refiner API key is not configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.Prompt},
			{Role: "user", Content: req.Content},
		},
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode refiner request")
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build refiner request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, apperrors.Wrapf(ErrServer, "request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := classifyStatus(resp.StatusCode); err != nil {
		c.logger.Warn("refiner call rejected",
			slog.Int("status_code", resp.StatusCode),
			slog.Duration("elapsed", time.Since(start)),
		)
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.Wrapf(ErrInvalidResponse, "failed to read body: %v", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, apperrors.Wrapf(ErrInvalidResponse, "failed to decode body: %v", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, apperrors.Wrap(ErrInvalidResponse, "response has no choices")
	}

	refined, err := parseRefinedPayload(chatResp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	model := chatResp.Model
	if model == "" {
		model = c.model
	}

	c.logger.Info("material refined",
		slog.String("model", model),
		slog.Int("total_tokens", chatResp.Usage.TotalTokens),
		slog.Duration("elapsed", time.Since(start)),
	)

	return &RefineResult{
		Title:   refined.Title,
		Content: refined.Content,
		Tags:    refined.Tags,
		Model:   model,
		Usage: Usage{
			PromptTokens:     chatResp.Usage.PromptTokens,
			CompletionTokens: chatResp.Usage.CompletionTokens,
			TotalTokens:      chatResp.Usage.TotalTokens,
		},
	}, nil
}

// classifyStatus maps a non-200 status onto the closed error kinds.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrAuth
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= 500:
		return ErrServer
	default:
		return apperrors.Wrapf(ErrInvalidResponse, "unexpected status %d", status)
	}
}

// parseRefinedPayload decodes the assistant message, tolerating a markdown
// code fence around the JSON document.
func parseRefinedPayload(content string) (*refinedPayload, error) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	var refined refinedPayload
	if err := json.Unmarshal([]byte(trimmed), &refined); err != nil {
		return nil, apperrors.Wrapf(ErrInvalidResponse, "assistant message is not valid JSON: %v", err)
	}
	if strings.TrimSpace(refined.Content) == "" {
		return nil, apperrors.Wrap(ErrInvalidResponse, "assistant message has no content field")
	}
	if refined.Tags == nil {
		refined.Tags = []string{}
	}
	return &refined, nil
}

// isTimeout reports whether the error chain contains a network timeout.
func isTimeout(err error) bool {
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}
