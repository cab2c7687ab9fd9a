package search

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLiteDB opens the SQLite database at dsn and makes sure the FTS5 table exists.
// Use ":memory:" for a private in-process index. The pool is limited to a single
// connection: every in-memory connection would otherwise get its own empty database.
//
// The binary must be built with the fts5 tag for the virtual table to be available.
func OpenSQLiteDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS chunks;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Porter stemming on top of unicode61 so "estimates" matches "estimate".
	_, err = db.ExecContext(ctx, `
        CREATE VIRTUAL TABLE IF NOT EXISTS chunks
        USING fts5(
            template UNINDEXED,
            section,
            content,
            tokenize = 'porter unicode61 remove_diacritics 2'
        );
    `)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create fts5 table (was the binary built with -tags fts5?): %w", err)
	}
	return db, nil
}
