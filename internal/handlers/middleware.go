package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/edsblocks/eds-mcp/internal/logging"
)

// toolMiddleware wraps a ToolHandler to add correlation ID, logging and recovery.
type toolMiddleware struct {
	name string
	next ToolHandler
}

func (m toolMiddleware) Handle(ctx context.Context, request mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
	ctx = logging.ContextWithRequestID(ctx, uuid.New().String())
	start := time.Now()

	logging.RequestStart(ctx, m.name, request.GetArguments())

	// A panicking handler fails its own request only.
	defer func() {
		if rec := recover(); rec != nil {
			logging.RequestEnd(ctx, m.name, false, time.Since(start), fmt.Errorf("panic: %v", rec))
			res = mcp.NewToolResultError(fmt.Sprintf("Internal error while running %q. Please retry; if it keeps failing, report it to the server operator.", m.name))
			err = nil
		}
	}()

	res, err = m.next.Handle(ctx, request)
	success := err == nil && res != nil && !res.IsError
	logging.RequestEnd(ctx, m.name, success, time.Since(start), err)
	return res, err
}

// WithToolMiddleware decorates a ToolHandler with centralized boilerplate.
func WithToolMiddleware(name string, h ToolHandler) ToolHandler {
	return toolMiddleware{name: name, next: h}
}

// promptMiddleware wraps a PromptHandler to add correlation ID, logging and recovery.
type promptMiddleware struct {
	name string
	next PromptHandler
}

func (m promptMiddleware) Handle(ctx context.Context, request mcp.GetPromptRequest) (res *mcp.GetPromptResult, err error) {
	ctx = logging.ContextWithRequestID(ctx, uuid.New().String())
	start := time.Now()

	args := map[string]any{}
	for k, v := range request.Params.Arguments {
		args[k] = v
	}
	logging.RequestStart(ctx, m.name, args)

	defer func() {
		if rec := recover(); rec != nil {
			logging.RequestEnd(ctx, m.name, false, time.Since(start), fmt.Errorf("panic: %v", rec))
			res = nil
			err = fmt.Errorf("internal error while rendering prompt %q", m.name)
		}
	}()

	res, err = m.next.Handle(ctx, request)
	logging.RequestEnd(ctx, m.name, err == nil, time.Since(start), err)
	return res, err
}

// WithPromptMiddleware decorates a PromptHandler with centralized boilerplate.
func WithPromptMiddleware(name string, h PromptHandler) PromptHandler {
	return promptMiddleware{name: name, next: h}
}
