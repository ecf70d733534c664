// Package fetch retrieves remote pages and images through the outbound
// security gate. Every request is validated against the URL guard before
// any connection is made, paced by a shared rate limiter, and retried with
// backoff on transient failures.
package fetch

// Page is the readable content extracted from a fetched HTML document.
type Page struct {
	// URL is the sanitized URL the page was fetched from.
	URL string
	// Title is the document title (readability first, <title> fallback).
	Title string
	// Content is the extracted readable text.
	Content string
}

// Image is a fetched remote image.
type Image struct {
	// Data holds the raw image bytes.
	Data []byte
	// ContentType is the image MIME type reported by the origin.
	ContentType string
}
