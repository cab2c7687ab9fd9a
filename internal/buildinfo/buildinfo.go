// Package buildinfo exposes version metadata populated at build time via -ldflags.
//
// Example:
//
//	go build -tags fts5 \
//	  -ldflags "-X github.com/edsblocks/eds-mcp/internal/buildinfo.Version=1.0.0 \
//	            -X github.com/edsblocks/eds-mcp/internal/buildinfo.Commit=abcdef1 \
//	            -X github.com/edsblocks/eds-mcp/internal/buildinfo.Date=2026-10-15T12:00:00Z" \
//	  ./cmd/eds-mcp
package buildinfo

import "fmt"

var (
	// Version is the semantic version of the binary (e.g., 1.0.0). Defaults to "dev".
	Version = "dev"

	// Commit is the short git commit hash used for the build. Defaults to ""
	Commit = ""

	// Date is the build date/time in RFC3339 format. Defaults to "".
	Date = ""
)

// String renders the build metadata on a single line.
func String() string {
	s := Version
	if Commit != "" {
		s += fmt.Sprintf(" (%s)", Commit)
	}
	if Date != "" {
		s += " built " + Date
	}
	return s
}
