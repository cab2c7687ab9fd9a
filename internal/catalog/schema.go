package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the manifest format, for editors and CI linting.
// Rules spanning fields, such as file and inline being exclusive, are only enforced by Validate.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "yaml",
		ExpandedStruct: true,
	}

	s := r.Reflect(&Manifest{})
	s.Title = "eds-mcp catalog manifest"

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest schema: %w", err)
	}
	return out, nil
}
