// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/troop-optimizer/internal/types"
)

// EnvConfigPath names a config file used when --config is not given.
const EnvConfigPath = "TROOP_OPTIMIZER_CONFIG"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Budget  *types.Resources `json:"budget,omitempty" yaml:"budget,omitempty"`   // Resources available
	Catalog string           `json:"catalog,omitempty" yaml:"catalog,omitempty"` // Built-in tribe name or catalog file
	Troop1  string           `json:"troop1,omitempty" yaml:"troop1,omitempty"`   // First unit, looked up in the catalog
	Troop2  string           `json:"troop2,omitempty" yaml:"troop2,omitempty"`   // Second unit, looked up in the catalog
	Cost1   *types.Resources `json:"cost1,omitempty" yaml:"cost1,omitempty"`     // Raw cost of the first unit
	Cost2   *types.Resources `json:"cost2,omitempty" yaml:"cost2,omitempty"`     // Raw cost of the second unit

	// Search
	Step    int    `json:"step,omitempty" yaml:"step,omitempty"`       // Coarse sweep stride
	Window  *int   `json:"window,omitempty" yaml:"window,omitempty"`   // Fine sweep radius (0 is meaningful)
	Exclude string `json:"exclude,omitempty" yaml:"exclude,omitempty"` // Resource kind left out of the score
	Workers int    `json:"workers,omitempty" yaml:"workers,omitempty"` // Concurrent sweep rows / compare pairs

	// Output
	Top     int  `json:"top,omitempty" yaml:"top,omitempty"`         // Pairs shown by compare
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	window := 10
	return Config{
		Catalog: "spartans",
		Step:    10,
		Window:  &window,
		Top:     5,
	}
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the
// extension is .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Troop1 != "" && c.Cost1 != nil {
		return fmt.Errorf("config error: 'troop1' and 'cost1' are mutually exclusive")
	}
	if c.Troop2 != "" && c.Cost2 != nil {
		return fmt.Errorf("config error: 'troop2' and 'cost2' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.Step < 0 {
		return fmt.Errorf("config error: 'step' must be at least 1")
	}
	if c.Window != nil && *c.Window < 0 {
		return fmt.Errorf("config error: 'window' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Top < 0 {
		return fmt.Errorf("config error: 'top' must be non-negative")
	}
	if c.Cost1 != nil && c.Cost1.IsInfeasible() {
		return fmt.Errorf("config error: 'cost1' must be non-negative, got %s", c.Cost1)
	}
	if c.Cost2 != nil && c.Cost2.IsInfeasible() {
		return fmt.Errorf("config error: 'cost2' must be non-negative, got %s", c.Cost2)
	}

	if c.Exclude != "" {
		if _, err := types.ParseKind(c.Exclude); err != nil {
			return fmt.Errorf("config error: 'exclude': %w", err)
		}
	}

	// A catalog that looks like a file must exist
	if isCatalogPath(c.Catalog) {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Budget == nil {
		result.Budget = defaults.Budget
	}
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}

	// A unit given one way in the file keeps the default from supplying it the other way
	if result.Troop1 == "" && result.Cost1 == nil {
		result.Troop1 = defaults.Troop1
		result.Cost1 = defaults.Cost1
	}
	if result.Troop2 == "" && result.Cost2 == nil {
		result.Troop2 = defaults.Troop2
		result.Cost2 = defaults.Cost2
	}

	if result.Exclude == "" {
		result.Exclude = defaults.Exclude
	}

	// Int fields: use default if zero
	if result.Step == 0 {
		result.Step = defaults.Step
	}
	if result.Window == nil {
		result.Window = defaults.Window
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Top == 0 {
		result.Top = defaults.Top
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// WindowOrDefault returns the fine window, or the built-in default when unset.
func (c *Config) WindowOrDefault() int {
	if c.Window != nil {
		return *c.Window
	}
	return *Defaults().Window
}

func isCatalogPath(catalog string) bool {
	if catalog == "" {
		return false
	}
	switch strings.ToLower(filepath.Ext(catalog)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return strings.ContainsRune(catalog, os.PathSeparator)
}
