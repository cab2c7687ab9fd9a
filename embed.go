// Package edsmcp holds the assets shipped with the EDS block analyser MCP server.
package edsmcp

import (
	"embed"
	"io/fs"
)

// Resources contains the default catalog manifest, prompts and templates.
//
//go:embed resources/**
var Resources embed.FS

const (
	// ResourcesRoot is the directory inside Resources that template locators are relative to.
	ResourcesRoot = "resources"

	// ManifestPath is the location of the default catalog manifest inside Resources.
	ManifestPath = "resources/manifest.yaml"
)

// Root returns the embedded resources directory as the root of template locators.
func Root() (fs.FS, error) {
	return fs.Sub(Resources, ResourcesRoot)
}
