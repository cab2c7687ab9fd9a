//go:build !fts5

package main

import (
	"fmt"
	"os"
)

// This file is compiled when the fts5 build tag is NOT present.
// It provides a helpful error message to guide users.

func main() {
	fmt.Fprintln(os.Stderr, `
ERROR: Missing required build tag 'fts5'

This application requires the 'fts5' build tag to compile properly.

To build or run this application, use:
  go build -tags fts5 ./cmd/eds-mcp
  go run -tags fts5 ./cmd/eds-mcp
  go install -tags fts5 github.com/edsblocks/eds-mcp/cmd/eds-mcp

The fts5 tag is required for the SQLite FTS5 index behind search_templates.`)
	os.Exit(1)
}
