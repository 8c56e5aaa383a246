// Package catalog provides unit catalogs: built-in tribes and catalog files on disk.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/troop-optimizer/internal/schemas"
	"github.com/jonathan/troop-optimizer/internal/types"
	schemadocs "github.com/jonathan/troop-optimizer/schemas"
)

// LoadFile reads a catalog from a JSON or YAML file (by extension), checks it
// against the catalog schema and validates the decoded units.
func LoadFile(path string) (*types.Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data, isYAML(path))
}

// Parse decodes catalog content. YAML content is converted to JSON first so
// both formats go through the same schema.
func Parse(data []byte, fromYAML bool) (*types.Catalog, error) {
	if fromYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	if err := schemas.ValidateJSON(schemadocs.Catalog, data); err != nil {
		return nil, fmt.Errorf("catalog does not match schema: %w", err)
	}

	var cat types.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &cat, nil
}

// Resolve returns the built-in catalog with the given name, or loads the
// catalog file at that path. An empty name selects DefaultTribe.
func Resolve(nameOrPath string) (*types.Catalog, error) {
	if strings.TrimSpace(nameOrPath) == "" {
		nameOrPath = DefaultTribe
	}
	if cat, ok := Builtin(nameOrPath); ok {
		return cat, nil
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return nil, fmt.Errorf("catalog %q is neither a built-in (%s) nor a readable file: %w",
			nameOrPath, strings.Join(BuiltinNames(), ", "), err)
	}
	return LoadFile(nameOrPath)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert catalog YAML: %w", err)
	}
	return out, nil
}
