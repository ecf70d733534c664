package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/contenthub/backend/internal/errors"
	"github.com/contenthub/backend/internal/security"
)

// maxImageBytes caps a fetched image at 20 MiB.
const maxImageBytes = 20 << 20

// ImageFetcher retrieves remote images through the security gate.
type ImageFetcher struct {
	guard   *security.Guard
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// ImageFetcherOption customizes an ImageFetcher.
type ImageFetcherOption func(*ImageFetcher)

// WithImageHTTPClient replaces the outbound HTTP client. Intended for tests.
func WithImageHTTPClient(client *http.Client) ImageFetcherOption {
	return func(f *ImageFetcher) {
		f.client = client
	}
}

// NewImageFetcher creates an image fetcher sharing the page fetcher's
// transport and pacing configuration.
func NewImageFetcher(
	guard *security.Guard,
	timeout time.Duration,
	ratePerSec float64,
	burst int,
	logger *slog.Logger,
	opts ...ImageFetcherOption,
) *ImageFetcher {
	f := &ImageFetcher{
		guard:   guard,
		client:  newHTTPClient(guard.SafeTransport(), timeout, logger),
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchImage validates the URL against the gate and retrieves the image bytes.
// Gate rejections surface unmodified.
func (f *ImageFetcher) FetchImage(ctx context.Context, rawURL string) (*Image, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Wrap(err, "fetch rate limiter interrupted")
	}

	sanitized := security.SanitizeURL(rawURL)
	if err := f.guard.ValidateFetchURL(ctx, sanitized, true); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sanitized, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build fetch request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "fetch failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Wrapf(
			apperrors.ErrUpstream,
			"fetch returned status %d",
			resp.StatusCode,
		)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			fmt.Sprintf("url did not return an image (got %s)", contentType),
		)
	}

	data, err := readCapped(resp.Body, maxImageBytes)
	if err != nil {
		return nil, err
	}

	f.logger.Info("image fetched",
		slog.String("url", sanitized),
		slog.String("content_type", mediaType),
		slog.Int("bytes", len(data)),
	)

	return &Image{
		Data:        data,
		ContentType: mediaType,
	}, nil
}
