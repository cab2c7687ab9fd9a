package dispatch

import (
	"context"
	"fmt"
	"path"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/edsblocks/eds-mcp/internal/capability"
	"github.com/edsblocks/eds-mcp/internal/catalog"
	"github.com/edsblocks/eds-mcp/internal/handlers"
	"github.com/edsblocks/eds-mcp/internal/templates"
)

// TemplateURIScheme prefixes the resource URI of every template.
const TemplateURIScheme = "eds-template://"

// TemplateURI returns the resource URI of the named template.
func TemplateURI(name string) string {
	return TemplateURIScheme + name
}

// NewServer builds the MCP server: one tool per capability, one resource per
// template and the block analyser prompt.
func NewServer(info catalog.ServerInfo, registry *capability.Registry, store *templates.Store) *server.MCPServer {
	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
	}
	if info.Instructions != "" {
		opts = append(opts, server.WithInstructions(info.Instructions))
	}

	s := server.NewMCPServer(info.Name, info.Version, opts...)

	New(registry).Attach(s)
	addTemplateResources(s, store)

	if _, err := store.Lookup(handlers.TemplateBlockAnalyser); !templates.IsNotFound(err) {
		prompt := mcp.NewPrompt(handlers.CapabilityBlockAnalyser,
			mcp.WithPromptDescription("UI architect prompt for analyzing and estimating EDS block conversion"),
		)
		h := handlers.WithPromptMiddleware(handlers.CapabilityBlockAnalyser,
			handlers.NewTemplatePrompt(store, handlers.TemplateBlockAnalyser, "UI architect prompt for EDS block estimation"))
		s.AddPrompt(prompt, h.Handle)
	}

	return s
}

func addTemplateResources(s *server.MCPServer, store *templates.Store) {
	for _, d := range store.Descriptors() {
		name := d.Name
		uri := TemplateURI(name)
		mimeType := mimeTypeOf(d.Source)

		opts := []mcp.ResourceOption{mcp.WithMIMEType(mimeType)}
		if d.Description != "" {
			opts = append(opts, mcp.WithResourceDescription(d.Description))
		}

		s.AddResource(mcp.NewResource(uri, name, opts...), func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			content, err := store.Lookup(name)
			if err != nil {
				return nil, fmt.Errorf("template %q is unavailable", name)
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      uri,
					MIMEType: mimeType,
					Text:     content,
				},
			}, nil
		})
	}
}

func mimeTypeOf(src templates.Source) string {
	if src.Kind != templates.SourceFile {
		return "text/plain"
	}
	switch path.Ext(src.Path) {
	case ".md", ".markdown":
		return "text/markdown"
	case ".csv":
		return "text/csv"
	case ".yaml", ".yml":
		return "application/yaml"
	}
	return "text/plain"
}
