package search

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/edsblocks/eds-mcp/internal/logging"
	"github.com/edsblocks/eds-mcp/internal/templates"
)

// FullTextIndex is a SQLite FTS5 index over template sections. It is built once and
// only queried afterwards.
type FullTextIndex struct {
	db *sql.DB
}

var _ Searcher = &FullTextIndex{}

// NewFullTextIndex wraps an initialized database (see OpenSQLiteDB).
func NewFullTextIndex(db *sql.DB) *FullTextIndex {
	return &FullTextIndex{db: db}
}

// BuildFullTextIndex creates an in-memory index holding every readable template of store.
// Templates that cannot be read are skipped and logged; they remain resolvable by name
// once their file is restored.
func BuildFullTextIndex(ctx context.Context, store *templates.Store) (*FullTextIndex, error) {
	db, err := OpenSQLiteDB(ctx, ":memory:")
	if err != nil {
		return nil, err
	}

	idx := NewFullTextIndex(db)
	if _, err := idx.IndexStore(ctx, store); err != nil {
		_ = db.Close()
		return nil, err
	}
	return idx, nil
}

// IndexStore inserts the chunks of every readable template and returns how many were added.
func (s *FullTextIndex) IndexStore(ctx context.Context, store *templates.Store) (int, error) {
	logger := logging.WithComponent("search")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO chunks (template, section, content) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for _, d := range store.Descriptors() {
		content, err := store.Lookup(d.Name)
		if err != nil {
			logger.WarnContext(ctx, "Skipping unreadable template",
				"template", d.Name,
				"error", err.Error(),
			)
			continue
		}

		for _, c := range chunksFor(d, content) {
			if _, err := stmt.ExecContext(ctx, c.Template, c.Section, c.Content); err != nil {
				return 0, fmt.Errorf("failed to index template %q: %w", d.Name, err)
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	logger.DebugContext(ctx, "Template index built", "chunks", count)
	return count, nil
}

func chunksFor(d templates.Descriptor, content string) []Chunk {
	if d.Source.Kind == templates.SourceFile && strings.EqualFold(path.Ext(d.Source.Path), ".md") {
		return ChunkMarkdown(d.Name, []byte(content))
	}
	return ChunkPlain(d.Name, []byte(content))
}

// Search returns up to opts.MaxResults sections matching query, best match first.
func (s *FullTextIndex) Search(ctx context.Context, query string, opts Options) ([]Result, error) {
	startTime := time.Now()

	limit := opts.MaxResults
	if limit <= 0 {
		limit = DefaultMaxResults
	}
	if limit > MaxResultsLimit {
		limit = MaxResultsLimit
	}

	processed := preprocessQuery(query)
	if processed == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT template, section, snippet(chunks, 2, '**', '**', '...', 16), bm25(chunks, 0.0, 3.0, 1.0)
        FROM chunks
        WHERE chunks MATCH ?
        ORDER BY bm25(chunks, 0.0, 3.0, 1.0)
        LIMIT ?`, processed, limit)
	if err != nil {
		logging.SearchEvent(ctx, query, 0, time.Since(startTime), err)
		return nil, fmt.Errorf("invalid search query: %w", err)
	}
	defer rows.Close()

	results := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		var rank float64
		if err := rows.Scan(&r.Template, &r.Section, &r.Snippet, &rank); err != nil {
			return nil, err
		}
		// bm25 is negative, lower is better
		r.Score = -rank
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logging.SearchEvent(ctx, query, len(results), time.Since(startTime), nil)
	return results, nil
}

// Close releases the underlying database.
func (s *FullTextIndex) Close() error {
	return s.db.Close()
}

// preprocessQuery turns plain words into a quoted FTS5 AND query while preserving
// explicit FTS5 syntax like AND, OR, NEAR, quotes and prefixes.
func preprocessQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	if strings.Contains(query, " AND ") || strings.Contains(query, " OR ") ||
		strings.Contains(query, " NEAR") || strings.Contains(query, "\"") ||
		strings.Contains(query, "*") || strings.Contains(query, "(") {
		return query
	}

	words := strings.Fields(query)
	for i, w := range words {
		words[i] = `"` + w + `"`
	}
	return strings.Join(words, " AND ")
}
