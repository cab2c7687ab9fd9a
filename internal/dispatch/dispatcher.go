// Package dispatch connects the capability registry to the MCP transport.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/edsblocks/eds-mcp/internal/capability"
	"github.com/edsblocks/eds-mcp/internal/handlers"
	"github.com/edsblocks/eds-mcp/internal/logging"
)

// Dispatcher routes tool calls to registered capabilities.
type Dispatcher struct {
	registry *capability.Registry
}

// New returns a Dispatcher over registry.
func New(registry *capability.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// ListCapabilities returns one MCP tool per registered capability, in registration order.
func (d *Dispatcher) ListCapabilities() []mcp.Tool {
	descriptors := d.registry.List()
	tools := make([]mcp.Tool, 0, len(descriptors))
	for _, desc := range descriptors {
		tools = append(tools, toTool(desc))
	}
	return tools
}

func toTool(desc capability.Descriptor) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(desc.Description)}
	if desc.Title != "" {
		opts = append(opts, mcp.WithTitleAnnotation(desc.Title))
	}

	for _, arg := range desc.Arguments {
		props := []mcp.PropertyOption{mcp.Description(arg.Description)}
		if arg.Required {
			props = append(props, mcp.Required())
		}
		if arg.Number {
			opts = append(opts, mcp.WithNumber(arg.Name, props...))
		} else {
			opts = append(opts, mcp.WithString(arg.Name, props...))
		}
	}

	return mcp.NewTool(desc.Name, opts...)
}

// Invoke runs the capability named by request. An unknown name is the only
// request-level error and wraps capability.ErrCapabilityNotFound. Handler failures
// come back as an error result carrying the failure text.
func (d *Dispatcher) Invoke(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.Params.Name

	text, err := d.registry.Invoke(ctx, name, request.GetArguments())
	if errors.Is(err, capability.ErrCapabilityNotFound) {
		return nil, err
	}
	if err != nil {
		logging.WithContext(ctx).WarnContext(ctx, "Capability failed",
			"tool", name,
			"error", err.Error(),
		)
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %s", name, err.Error())), nil
	}

	return mcp.NewToolResultText(text), nil
}

// Attach adds every registered capability to s as a tool handled by the dispatcher.
func (d *Dispatcher) Attach(s *server.MCPServer) {
	for _, tool := range d.ListCapabilities() {
		h := handlers.WithToolMiddleware(tool.Name, handlers.ToolHandlerFunc(d.Invoke))
		s.AddTool(tool, h.Handle)
	}
}
