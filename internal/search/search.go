// Package search provides full-text search over the server's templates.
package search

import (
	"context"
	"io"
)

// Result represents a search hit inside a template.
type Result struct {
	Template string  `json:"template"`
	Section  string  `json:"section,omitempty"`
	Snippet  string  `json:"snippet"`
	Score    float64 `json:"score"`
}

// Options configures search behavior.
type Options struct {
	MaxResults int `json:"max_results"`
}

// Searcher defines the interface for template search implementations.
type Searcher interface {
	// Search returns the templates sections best matching query.
	Search(ctx context.Context, query string, opts Options) ([]Result, error)

	io.Closer
}

const (
	// DefaultMaxResults is used when a caller does not ask for a specific count.
	DefaultMaxResults = 5
	// MaxResultsLimit caps the number of results a single query can return.
	MaxResultsLimit = 20
)

// DefaultOptions returns default search configuration.
func DefaultOptions() Options {
	return Options{
		MaxResults: DefaultMaxResults,
	}
}
