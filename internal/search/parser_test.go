package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkMarkdownSplitsOnSections(t *testing.T) {
	src := []byte(`Preamble text.

# Evaluation Log

## Iteration 1
- **Timestamp:**
- **Overall Quality Score:**

<!-- authoring hint -->

## Final Evaluation
Status: PASS or FAIL

#### Notes
deep heading stays in its section
`)

	chunks := ChunkMarkdown("evaluation_log", src)
	require.Len(t, chunks, 4)

	assert.Equal(t, "", chunks[0].Section)
	assert.Equal(t, "Preamble text.", chunks[0].Content)

	assert.Equal(t, "Evaluation Log", chunks[1].Section)
	assert.Empty(t, chunks[1].Content)

	assert.Equal(t, "Iteration 1", chunks[2].Section)
	assert.Contains(t, chunks[2].Content, "Overall Quality Score")
	assert.NotContains(t, chunks[2].Content, "authoring hint")

	assert.Equal(t, "Final Evaluation", chunks[3].Section)
	assert.Contains(t, chunks[3].Content, "Status: PASS or FAIL")
	assert.Contains(t, chunks[3].Content, "deep heading stays in its section")

	for _, c := range chunks {
		assert.Equal(t, "evaluation_log", c.Template)
	}
}

func TestChunkPlain(t *testing.T) {
	chunks := ChunkPlain("csv_columns", []byte("  \"Page Title\",\"Page URL\"\n"))
	require.Len(t, chunks, 1)
	assert.Equal(t, `"Page Title","Page URL"`, chunks[0].Content)

	assert.Empty(t, ChunkPlain("empty", []byte("   \n")))
}

func TestPreprocessQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  sizing ", `"sizing"`},
		{"tshirt sizing", `"tshirt" AND "sizing"`},
		{"hero-banner", `"hero-banner"`},
		{"csv OR summary", "csv OR summary"},
		{`"quality score"`, `"quality score"`},
		{"access*", "access*"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, preprocessQuery(tt.in))
		})
	}
}
