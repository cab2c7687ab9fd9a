// Package catalog loads the manifest describing the server identity and its templates.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/edsblocks/eds-mcp/internal/templates"
)

// Manifest is the immutable configuration the server is built from.
type Manifest struct {
	Server    ServerInfo      `yaml:"server"`
	Templates []TemplateEntry `yaml:"templates"`
}

// ServerInfo identifies the server to MCP clients.
type ServerInfo struct {
	Name         string `yaml:"name" jsonschema:"description=Server name reported to MCP clients"`
	Version      string `yaml:"version" jsonschema:"description=Server version reported to MCP clients"`
	Instructions string `yaml:"instructions,omitempty" jsonschema:"description=Usage instructions sent during initialization"`
}

// TemplateEntry declares one template. Exactly one of File and Inline is set.
type TemplateEntry struct {
	Name        string `yaml:"name" jsonschema:"description=Unique case-sensitive template name"`
	File        string `yaml:"file,omitempty" jsonschema:"description=Slash-separated path relative to the templates directory"`
	Inline      string `yaml:"inline,omitempty" jsonschema:"description=Template text stored in the manifest itself"`
	Description string `yaml:"description,omitempty" jsonschema:"description=Purpose shown by list_templates"`
}

// Parse decodes and validates a YAML manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads the manifest at path from fsys.
func Load(fsys fs.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// LoadFile reads the manifest at an operating system path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Validate reports every problem in the manifest at once.
func (m *Manifest) Validate() error {
	var errs []error

	if strings.TrimSpace(m.Server.Name) == "" {
		errs = append(errs, errors.New("server.name is required"))
	}
	if strings.TrimSpace(m.Server.Version) == "" {
		errs = append(errs, errors.New("server.version is required"))
	}
	if len(m.Templates) == 0 {
		errs = append(errs, errors.New("at least one template is required"))
	}

	seen := make(map[string]bool, len(m.Templates))
	for i, t := range m.Templates {
		switch {
		case strings.TrimSpace(t.Name) == "":
			errs = append(errs, fmt.Errorf("templates[%d]: name is required", i))
		case seen[t.Name]:
			errs = append(errs, fmt.Errorf("templates[%d]: duplicate name %q", i, t.Name))
		}
		seen[t.Name] = true

		if (t.File == "") == (t.Inline == "") {
			errs = append(errs, fmt.Errorf("templates[%d] (%s): exactly one of file or inline is required", i, t.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid manifest: %w", errors.Join(errs...))
	}
	return nil
}

// Descriptors converts the template entries into store descriptors, in manifest order.
func (m *Manifest) Descriptors() []templates.Descriptor {
	out := make([]templates.Descriptor, 0, len(m.Templates))
	for _, t := range m.Templates {
		src := templates.Inline(t.Inline)
		if t.File != "" {
			src = templates.File(t.File)
		}
		out = append(out, templates.Descriptor{
			Name:        t.Name,
			Source:      src,
			Description: t.Description,
		})
	}
	return out
}
