// Package refiner adapts an OpenAI-compatible chat-completions endpoint for
// turning raw material content into refined topics. Failures collapse into a
// closed set of error kinds derived from status codes, never from response
// prose.
package refiner

import (
	"context"

	apperrors "github.com/contenthub/backend/internal/errors"
)

// Closed refiner error kinds. Every failure mode maps onto exactly one of
// these; callers branch with errors.Is instead of parsing messages.
var (
	// ErrAuth indicates the provider rejected the API credential.
	ErrAuth = apperrors.Wrap(apperrors.ErrUpstream, "refiner authentication failed")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = apperrors.Wrap(apperrors.ErrUpstream, "refiner rate limited")

	// ErrTimeout indicates the request ran out of time.
	ErrTimeout = apperrors.Wrap(apperrors.ErrUpstream, "refiner request timed out")

	// ErrServer indicates a provider-side failure.
	ErrServer = apperrors.Wrap(apperrors.ErrUpstream, "refiner server failure")

	// ErrInvalidResponse indicates the provider answered with a body the
	// adapter could not interpret.
	ErrInvalidResponse = apperrors.Wrap(apperrors.ErrUpstream, "refiner returned an invalid response")
)

// RefineRequest carries one refinement call.
type RefineRequest struct {
	// APIKey is the decrypted provider credential.
	APIKey string
	// Prompt is the system instruction describing the refinement.
	Prompt string
	// Content is the material text to refine.
	Content string
}

// Usage reports provider token consumption for one call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// RefineResult is the structured output of a refinement call.
type RefineResult struct {
	// Title is the refined topic title.
	Title string
	// Content is the refined topic body.
	Content string
	// Tags are labels the model assigned.
	Tags []string
	// Model is the model that produced the result.
	Model string
	// Usage reports token consumption.
	Usage Usage
}

// Refiner turns material content into refined topics.
type Refiner interface {
	Refine(ctx context.Context, req *RefineRequest) (*RefineResult, error)
}
