package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edsblocks/eds-mcp/internal/search"
)

const (
	// ArgQuery is the search terms argument.
	ArgQuery = "query"
	// ArgMaxResults bounds the number of search results.
	ArgMaxResults = "max_results"
)

// SearchTemplatesHandler runs full-text queries over the templates.
type SearchTemplatesHandler struct {
	searcher search.Searcher
}

// NewSearchTemplatesHandler returns a handler backed by searcher.
func NewSearchTemplatesHandler(searcher search.Searcher) *SearchTemplatesHandler {
	return &SearchTemplatesHandler{searcher: searcher}
}

// Invoke returns the matches as indented JSON.
func (h *SearchTemplatesHandler) Invoke(ctx context.Context, args map[string]any) (string, error) {
	query, err := stringArg(args, ArgQuery, true)
	if err != nil {
		return "", fmt.Errorf("%w. Try terms such as 'tshirt sizing', 'quality score' or 'accessibility'", err)
	}

	options := search.DefaultOptions()
	maxResults, err := numberArg(args, ArgMaxResults, search.DefaultMaxResults)
	if err != nil {
		return "", fmt.Errorf("%w. Use a number between 1 and %d", err, search.MaxResultsLimit)
	}
	switch {
	case maxResults <= 0:
		options.MaxResults = search.DefaultMaxResults
	case maxResults > search.MaxResultsLimit:
		options.MaxResults = search.MaxResultsLimit
	default:
		options.MaxResults = maxResults
	}

	results, err := h.searcher.Search(ctx, query, options)
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}

	response := struct {
		Query       string          `json:"query"`
		Results     []search.Result `json:"results"`
		ResultCount int             `json:"result_count"`
		NextSteps   []string        `json:"next_steps,omitempty"`
	}{
		Query:       query,
		Results:     results,
		ResultCount: len(results),
	}
	if len(results) == 0 {
		response.NextSteps = []string{"Call list_templates to see every template name."}
	} else {
		response.NextSteps = []string{"Call get_template with the template name of a result to read it in full."}
	}

	out, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize search results: %w", err)
	}
	return string(out), nil
}
