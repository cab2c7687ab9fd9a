package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/edsblocks/eds-mcp/internal/templates"
)

// TemplatePrompt serves a fixed template, both as a capability and as an MCP prompt.
type TemplatePrompt struct {
	store       *templates.Store
	template    string
	description string
}

var _ PromptHandler = &TemplatePrompt{}

// NewTemplatePrompt returns a handler always resolving template from store.
func NewTemplatePrompt(store *templates.Store, template, description string) *TemplatePrompt {
	return &TemplatePrompt{store: store, template: template, description: description}
}

// Invoke ignores its arguments and returns the template text.
func (p *TemplatePrompt) Invoke(ctx context.Context, _ map[string]any) (string, error) {
	return p.store.Resolve(ctx, p.template), nil
}

// Handle answers prompts/get. Unlike the tool path, a missing template is an error here:
// prompt clients have no use for a list of template names.
func (p *TemplatePrompt) Handle(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	text, err := p.store.Lookup(p.template)
	if err != nil {
		return nil, fmt.Errorf("prompt %q is unavailable: %w", p.template, err)
	}

	return mcp.NewGetPromptResult(
		p.description,
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}
