// Package handlers implements the server's capabilities and the MCP handler plumbing around them.
package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ToolHandler defines an interface for MCP tool calls handlers.
type ToolHandler interface {
	Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// PromptHandler defines an interface for MCP prompt request handlers.
type PromptHandler interface {
	Handle(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)
}

// ToolHandlerFunc adapts a function to the ToolHandler interface.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Handle calls f(ctx, request).
func (f ToolHandlerFunc) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return f(ctx, request)
}
