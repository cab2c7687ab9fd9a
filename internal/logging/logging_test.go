package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()

	previous := Default()
	t.Cleanup(func() { defaultLogger.Store(previous) })

	var buf bytes.Buffer
	Configure(LogConfig{Level: level, Format: "json", Output: &buf})
	return &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  slog.Level
		known bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{" Error ", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestRequestLifecycleCarriesRequestID(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	ctx := ContextWithRequestID(context.Background(), "req-42")

	RequestStart(ctx, "get_template", map[string]any{"templateName": "alpha"})
	RequestEnd(ctx, "get_template", false, 0, errors.New("capability not found"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var start, end map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &start))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &end))

	assert.Equal(t, "req-42", start["request_id"])
	assert.Equal(t, "get_template", start["tool"])
	assert.Equal(t, ServiceName, start["service"])
	assert.Equal(t, "ERROR", end["level"])
	assert.Equal(t, "not_found", end["error_type"])
}

func TestSanitizeParamsTruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("x", maxLoggedArgLength+10)

	got := sanitizeParams(map[string]any{"query": long, "max_results": 3.0})

	assert.Equal(t, 3.0, got["max_results"])
	summary, ok := got["query"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, len(long), summary["length"])
}

func TestGetPathTypeHidesPaths(t *testing.T) {
	assert.Equal(t, "markdown", getPathType("/srv/secret/templates/summary.md"))
	assert.Equal(t, "csv", getPathType("templates/ui.CSV"))
	assert.Equal(t, "other", getPathType("templates/notes"))
}
