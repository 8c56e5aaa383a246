// Package types provides type definitions for structured data used throughout the troop-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Unit is one trainable unit type and the cost of building a single unit.
type Unit struct {
	Name string    `json:"name" yaml:"name" validate:"required"`
	Cost Resources `json:"cost" yaml:"cost"`
}

// Catalog is the set of units available to one tribe.
type Catalog struct {
	Tribe string `json:"tribe" yaml:"tribe" validate:"required"`
	Units []Unit `json:"units" yaml:"units" validate:"required,min=1,dive"`
}

// Validate checks struct constraints, duplicate unit names and negative costs.
func (c *Catalog) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	seen := make(map[string]string, len(c.Units))
	for _, u := range c.Units {
		key := normalizeUnitName(u.Name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("catalog %s: unit %q duplicates %q", c.Tribe, u.Name, prev)
		}
		seen[key] = u.Name
		if u.Cost.IsInfeasible() {
			return fmt.Errorf("catalog %s: unit %q has a negative cost (%s)", c.Tribe, u.Name, u.Cost)
		}
	}
	return nil
}

// Lookup finds a unit by name. Matching ignores case, spaces, underscores and hyphens.
func (c *Catalog) Lookup(name string) (Unit, error) {
	key := normalizeUnitName(name)
	for _, u := range c.Units {
		if normalizeUnitName(u.Name) == key {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %q in catalog %s", ErrUnknownUnit, name, c.Tribe)
}

// Names returns the unit names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Units))
	for _, u := range c.Units {
		names = append(names, u.Name)
	}
	return names
}

func normalizeUnitName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
