package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/time/rate"

	apperrors "github.com/contenthub/backend/internal/errors"
	"github.com/contenthub/backend/internal/security"
)

const (
	// maxPageBytes caps a fetched HTML document at 10 MiB.
	maxPageBytes = 10 << 20

	userAgent = "contenthub/1.0"
)

// PageFetcher retrieves HTML pages through the security gate and extracts
// their readable content.
type PageFetcher struct {
	guard   *security.Guard
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// PageFetcherOption customizes a PageFetcher.
type PageFetcherOption func(*PageFetcher)

// WithPageHTTPClient replaces the outbound HTTP client. Intended for tests,
// where the safe transport would reject loopback servers.
func WithPageHTTPClient(client *http.Client) PageFetcherOption {
	return func(f *PageFetcher) {
		f.client = client
	}
}

// NewPageFetcher creates a page fetcher. Outbound requests go through the
// guard's safe transport and are paced at ratePerSec with the given burst.
func NewPageFetcher(
	guard *security.Guard,
	timeout time.Duration,
	ratePerSec float64,
	burst int,
	logger *slog.Logger,
	opts ...PageFetcherOption,
) *PageFetcher {
	f := &PageFetcher{
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

// FetchPage validates the URL against the gate, retrieves the document, and
// extracts its title and readable text. Gate rejections surface unmodified.
func (f *PageFetcher) FetchPage(ctx context.Context, rawURL string) (*Page, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Wrap(err, "fetch rate limiter interrupted")
	}

	sanitized := security.SanitizeURL(rawURL)
	if err := f.guard.ValidateFetchURL(ctx, sanitized, true); err != nil {
		return nil, err
	}

	body, contentType, err := f.get(ctx, sanitized, maxPageBytes)
	if err != nil {
		return nil, err
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || (mediaType != "text/html" && mediaType != "application/xhtml+xml") {
		return nil, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			fmt.Sprintf("url did not return an HTML document (got %s)", contentType),
		)
	}

	title, content := extractReadableContent(body, sanitized)
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "no readable content found on page")
	}

	f.logger.Info("page fetched",
		slog.String("url", sanitized),
		slog.Int("content_length", len(content)),
	)

	return &Page{
		URL:     sanitized,
		Title:   title,
		Content: content,
	}, nil
}

// get performs the HTTP request and reads at most maxBytes of the body.
func (f *PageFetcher) get(ctx context.Context, target string, maxBytes int64) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", apperrors.Wrap(err, "failed to build fetch request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", apperrors.Wrapf(apperrors.ErrUpstream, "fetch failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", apperrors.Wrapf(
			apperrors.ErrUpstream,
			"fetch returned status %d",
			resp.StatusCode,
		)
	}

	body, err := readCapped(resp.Body, maxBytes)
	if err != nil {
		return nil, "", err
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// readCapped reads at most maxBytes from r, erroring when the body is larger.
func readCapped(r io.Reader, maxBytes int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read response body")
	}
	if int64(len(body)) > maxBytes {
		return nil, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			fmt.Sprintf("response body exceeds the %d byte limit", maxBytes),
		)
	}
	return body, nil
}

// extractReadableContent runs readability extraction with a goquery fallback
// for documents readability cannot parse.
func extractReadableContent(body []byte, pageURL string) (title, content string) {
	parsedURL, _ := url.Parse(pageURL)

	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return strings.TrimSpace(article.Title), strings.TrimSpace(article.TextContent)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", ""
	}
	doc.Find("script, style, noscript").Remove()
	title = strings.TrimSpace(doc.Find("title").First().Text())
	content = strings.TrimSpace(doc.Find("body").Text())
	return title, content
}
