package handlers

import (
	"github.com/edsblocks/eds-mcp/internal/capability"
	"github.com/edsblocks/eds-mcp/internal/search"
	"github.com/edsblocks/eds-mcp/internal/templates"
)

// Capability and template names of the public contract.
const (
	CapabilityBlockAnalyser   = "eds_block_analyser"
	CapabilityGetTemplate     = "get_template"
	CapabilityListTemplates   = "list_templates"
	CapabilitySearchTemplates = "search_templates"

	// TemplateBlockAnalyser is the template behind the eds_block_analyser capability.
	TemplateBlockAnalyser = "eds_block_analyser"
)

// Dependencies are the shared components the capabilities are built from.
type Dependencies struct {
	Store *templates.Store
	// Searcher is optional; search_templates is not registered without it.
	Searcher search.Searcher
}

// Descriptors returns the capability set exposed by the server, in listing order.
func Descriptors(deps Dependencies) []capability.Descriptor {
	descriptors := []capability.Descriptor{
		{
			Name:        CapabilityBlockAnalyser,
			Title:       "EDS Block Analyser",
			Description: "Get a UI architect prompt for analyzing and estimating UI block conversion from Figma designs or web pages",
			Handler:     NewTemplatePrompt(deps.Store, TemplateBlockAnalyser, "UI architect prompt for EDS block estimation"),
		},
		{
			Name:        CapabilityGetTemplate,
			Title:       "Get Template",
			Description: "Get a named markdown or CSV template for the analysis artifacts. Unknown names return the list of valid template names.",
			Arguments: []capability.Argument{
				{
					Name:        ArgTemplateName,
					Description: "Name of the template, e.g. 'ui_blocks_analysis_csv', 'analysis_summary' or 'evaluation_log'. Case-sensitive.",
					Required:    true,
				},
			},
			Handler: NewGetTemplateHandler(deps.Store),
		},
		{
			Name:        CapabilityListTemplates,
			Title:       "List Templates",
			Description: "List every template name with its title and purpose.",
			Handler:     NewListTemplatesHandler(deps.Store),
		},
	}

	if deps.Searcher != nil {
		descriptors = append(descriptors, capability.Descriptor{
			Name:        CapabilitySearchTemplates,
			Title:       "Search Templates",
			Description: "Full-text search over the prompt and templates. Returns matching sections with the template name to pass to get_template.",
			Arguments: []capability.Argument{
				{
					Name:        ArgQuery,
					Description: "Search terms, e.g. 'tshirt sizing' or 'accessibility score'. FTS5 syntax (AND, OR, \"phrases\", prefix*) is accepted.",
					Required:    true,
				},
				{
					Name:        ArgMaxResults,
					Description: "Maximum number of results (default 5, max 20).",
					Number:      true,
				},
			},
			Handler: NewSearchTemplatesHandler(deps.Searcher),
		})
	}

	return descriptors
}

// Register adds every capability of Descriptors(deps) to registry.
func Register(registry *capability.Registry, deps Dependencies) error {
	for _, d := range Descriptors(deps) {
		if err := registry.Register(d); err != nil {
			return err
		}
	}
	return nil
}
