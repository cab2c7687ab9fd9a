// Package logging provides structured logging functionality for the EDS MCP server.
//
// Logs always go to stderr: stdout carries the MCP protocol stream.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/edsblocks/eds-mcp/internal/buildinfo"
)

const (
	// ServiceName is the service identifier attached to every record
	ServiceName = "eds-mcp"

	// ContextKey for request correlation
	requestIDKey contextKey = "request_id"
)

type contextKey string

// defaultLogger is the package-level logger instance
var defaultLogger atomic.Pointer[slog.Logger]

// LogConfig holds logging configuration
type LogConfig struct {
	Level  slog.Level
	Format string // "json" or "text"
	Output io.Writer
}

// init initializes the default logger based on environment variables
func init() {
	defaultLogger.Store(newLogger(ConfigFromEnv()))
}

// ConfigFromEnv reads logging configuration from LOG_LEVEL and LOG_FORMAT.
func ConfigFromEnv() LogConfig {
	config := LogConfig{
		Level:  slog.LevelInfo,
		Format: "json",
	}

	if level, ok := ParseLevel(os.Getenv("LOG_LEVEL")); ok {
		config.Level = level
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		if strings.ToLower(format) == "text" {
			config.Format = "text"
		}
	}

	return config
}

// ParseLevel maps DEBUG/INFO/WARN/WARNING/ERROR (any case) to a slog level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Configure replaces the default logger. It is meant to be called once from main,
// after flags and .env files have been read.
func Configure(config LogConfig) {
	defaultLogger.Store(newLogger(config))
}

// newLogger creates a new slog.Logger with the given configuration
func newLogger(config LogConfig) *slog.Logger {
	var handler slog.Handler

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level: config.Level,
	}

	if config.Format == "text" {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	return slog.New(handler).With(
		slog.String("service", ServiceName),
		slog.String("version", buildinfo.Version),
	)
}

// Default returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// WithContext returns a logger with context-specific attributes
func WithContext(ctx context.Context) *slog.Logger {
	logger := Default()

	if id := GetRequestID(ctx); id != "" {
		logger = logger.With(slog.String("request_id", id))
	}

	return logger
}

// WithComponent returns a logger with component-specific attributes
func WithComponent(component string) *slog.Logger {
	return Default().With(slog.String("component", component))
}

// WithTool returns a logger with tool-specific attributes for MCP requests
func WithTool(toolName string) *slog.Logger {
	return Default().With(
		slog.String("tool", toolName),
		slog.String("component", "mcp"),
	)
}

// ContextWithRequestID adds a request ID to the context for log correlation
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
