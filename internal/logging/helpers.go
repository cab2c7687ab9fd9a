// Package logging provides helper functions for common logging patterns.
package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"
)

// maxLoggedArgLength bounds how much of a string argument ends up in the logs.
const maxLoggedArgLength = 64

// RequestStart logs the beginning of an MCP request
func RequestStart(ctx context.Context, toolName string, params map[string]any) {
	logger := withRequest(ctx, WithTool(toolName))

	logger.InfoContext(ctx, "MCP request started",
		slog.Any("params", sanitizeParams(params)),
		slog.Time("start_time", time.Now()),
	)
}

// RequestEnd logs the completion of an MCP request
func RequestEnd(ctx context.Context, toolName string, success bool, duration time.Duration, err error) {
	logger := withRequest(ctx, WithTool(toolName))

	if err != nil {
		logger.ErrorContext(ctx, "MCP request failed",
			slog.Bool("success", success),
			slog.Duration("duration", duration),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("error", err.Error()),
			slog.String("error_type", getErrorType(err)),
		)
		return
	}

	logger.InfoContext(ctx, "MCP request completed",
		slog.Bool("success", success),
		slog.Duration("duration", duration),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
}

// FileOperation logs file-related operations
func FileOperation(ctx context.Context, component string, operation string, filePath string, err error) {
	logger := withRequest(ctx, WithComponent(component))

	if err != nil {
		logger.ErrorContext(ctx, "File operation failed",
			slog.String("operation", operation),
			slog.String("path_type", getPathType(filePath)), // Avoid logging full paths
			slog.String("error", err.Error()),
			slog.String("error_type", getErrorType(err)),
		)
		return
	}

	logger.DebugContext(ctx, "File operation completed",
		slog.String("operation", operation),
		slog.String("path_type", getPathType(filePath)),
	)
}

// SearchEvent logs search-related events
func SearchEvent(ctx context.Context, query string, resultCount int, duration time.Duration, err error) {
	logger := withRequest(ctx, WithComponent("search"))

	if err != nil {
		logger.ErrorContext(ctx, "Search query failed",
			slog.String("query_hash", hashString(query)),
			slog.Int("result_count", resultCount),
			slog.Duration("duration", duration),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("error", err.Error()),
			slog.String("error_type", getErrorType(err)),
		)
		return
	}

	logger.InfoContext(ctx, "Search query completed",
		slog.String("query_hash", hashString(query)),
		slog.Int("result_count", resultCount),
		slog.Duration("duration", duration),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
}

func withRequest(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := GetRequestID(ctx); id != "" {
		return logger.With(slog.String("request_id", id))
	}
	return logger
}

// sanitizeParams truncates long string parameters for logging
func sanitizeParams(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}

	sanitized := make(map[string]any, len(params))

	for key, value := range params {
		str, ok := value.(string)
		if !ok || len(str) <= maxLoggedArgLength {
			sanitized[key] = value
			continue
		}
		sanitized[key] = map[string]any{
			"length": len(str),
			"prefix": str[:maxLoggedArgLength],
		}
	}

	return sanitized
}

// typedError matches the package-level *Error types that carry a classification.
type typedError interface {
	error
	Kind() string
}

// getErrorType extracts error type for classification
func getErrorType(err error) string {
	if err == nil {
		return ""
	}

	var typed typedError
	if errors.As(err, &typed) {
		return typed.Kind()
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline"):
		return "timeout"
	case strings.Contains(errStr, "panic"):
		return "panic"
	case strings.Contains(errStr, "not found"):
		return "not_found"
	}

	return "unknown"
}

// getPathType returns a safe representation of file paths
func getPathType(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".md":
		return "markdown"
	case ".csv":
		return "csv"
	case ".yaml", ".yml":
		return "yaml"
	case ".db":
		return "database"
	}
	return "other"
}

// hashString creates a simple fingerprint of a string for privacy
func hashString(s string) string {
	if len(s) == 0 {
		return "empty"
	}

	first := string(s[0])
	last := string(s[len(s)-1])
	return fmt.Sprintf("len_%d_%s_%s", len(s), first, last)
}
