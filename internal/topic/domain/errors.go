// Package domain defines core domain models and errors for topics.
package domain

import (
	"github.com/contenthub/backend/internal/errors"
)

// Topic-specific error definitions.
var (
	// ErrTopicNotFound indicates the topic does not exist.
	ErrTopicNotFound = errors.Wrap(errors.ErrNotFound, "topic not found")
)
