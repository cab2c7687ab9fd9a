package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/edsblocks/eds-mcp/internal/templates"
)

// ArgTemplateName is the argument naming the template to fetch.
const ArgTemplateName = "templateName"

// GetTemplateHandler resolves a template by the name the caller passes in.
type GetTemplateHandler struct {
	store *templates.Store
}

// NewGetTemplateHandler returns a handler resolving names against store.
func NewGetTemplateHandler(store *templates.Store) *GetTemplateHandler {
	return &GetTemplateHandler{store: store}
}

// Invoke returns the template content, or a descriptive text listing valid names when
// the template is unknown or unreadable. Only a non-string templateName is an error.
func (h *GetTemplateHandler) Invoke(ctx context.Context, args map[string]any) (string, error) {
	name, err := stringArg(args, ArgTemplateName, false)
	if err != nil {
		return "", err
	}
	return h.store.Resolve(ctx, name), nil
}

// ListTemplatesHandler describes every registered template.
type ListTemplatesHandler struct {
	store *templates.Store
}

// NewListTemplatesHandler returns a handler listing the templates of store.
func NewListTemplatesHandler(store *templates.Store) *ListTemplatesHandler {
	return &ListTemplatesHandler{store: store}
}

// Invoke renders a markdown list of template names, titles and descriptions.
// Titles come from the first heading of markdown templates; unreadable templates
// are still listed.
func (h *ListTemplatesHandler) Invoke(_ context.Context, _ map[string]any) (string, error) {
	var b strings.Builder
	b.WriteString("# Available templates\n\n")

	for _, d := range h.store.Descriptors() {
		fmt.Fprintf(&b, "- `%s`", d.Name)

		if content, err := h.store.Lookup(d.Name); err == nil {
			if title := templates.Title(content); title != "" {
				fmt.Fprintf(&b, " (%s)", title)
			}
		} else {
			b.WriteString(" (currently unreadable)")
		}

		if d.Description != "" {
			b.WriteString(": " + d.Description)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nFetch one with `get_template` and `%s` set to its name.\n", ArgTemplateName)
	return b.String(), nil
}
