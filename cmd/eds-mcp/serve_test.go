//go:build fts5

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsblocks/eds-mcp/internal/logging"
	"github.com/edsblocks/eds-mcp/internal/search"
	"github.com/edsblocks/eds-mcp/internal/templates"
)

func TestConfigureLogging(t *testing.T) {
	t.Cleanup(func() { logging.Configure(logging.ConfigFromEnv()) })

	tests := []struct {
		name    string
		opts    serveOptions
		wantErr string
	}{
		{name: "defaults", opts: serveOptions{}},
		{name: "explicit", opts: serveOptions{logLevel: "debug", logFormat: "text"}},
		{name: "bad level", opts: serveOptions{logLevel: "loud"}, wantErr: "--log-level"},
		{name: "bad format", opts: serveOptions{logFormat: "xml"}, wantErr: "--log-format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := configureLogging(tt.opts)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEmbeddedCatalogIsComplete(t *testing.T) {
	manifest, err := loadManifest("")
	require.NoError(t, err)

	root, err := templatesRoot("")
	require.NoError(t, err)

	store, err := templates.NewStore(root, manifest.Descriptors()...)
	require.NoError(t, err)

	for _, name := range []string{
		"eds_block_analyser",
		"ui_blocks_analysis_csv",
		"analysis_summary",
		"evaluation_log",
		"csv_columns",
		"quality_metrics",
	} {
		_, err := store.Lookup(name)
		assert.NoError(t, err, name)
	}
}

func TestTemplatesRootFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A\n"), 0o600))

	root, err := templatesRoot(dir)
	require.NoError(t, err)

	store, err := templates.NewStore(root, templates.Descriptor{Name: "a", Source: templates.File("a.md")})
	require.NoError(t, err)
	got, err := store.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "# A\n", got)

	_, err = templatesRoot(filepath.Join(dir, "a.md"))
	assert.ErrorContains(t, err, "not a directory")

	_, err = templatesRoot(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "eds-mcp")
}

func TestRunSearchOverEmbeddedCatalog(t *testing.T) {
	_, store, err := openCatalog(serveOptions{})
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)

	require.NoError(t, runSearch(cmd, store, "quality", 5))
	assert.Contains(t, out.String(), "[quality_metrics]")
}

func TestPrintResults(t *testing.T) {
	var out bytes.Buffer
	printResults(&out, nil)
	assert.Equal(t, "No matching templates.\n", out.String())

	out.Reset()
	printResults(&out, []search.Result{{Template: "analysis_summary", Section: "Totals", Snippet: "line one\nline two", Score: 1.5}})
	assert.Equal(t, "1. [analysis_summary] Totals (score 1.50)\n   line one line two\n", out.String())
}

func TestSchemaCommand(t *testing.T) {
	var out bytes.Buffer
	schemaCmd.SetOut(&out)
	require.NoError(t, schemaCmd.RunE(schemaCmd, nil))
	assert.Contains(t, out.String(), `"templates"`)
}
