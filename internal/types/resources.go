// Package types provides type definitions for structured data used throughout the troop-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names one resource dimension.
type Kind string

// The fixed, ordered set of resource kinds.
const (
	Lumber Kind = "lumber"
	Clay   Kind = "clay"
	Iron   Kind = "iron"
	Crop   Kind = "crop"
)

var allKinds = [...]Kind{Lumber, Clay, Iron, Crop}

// Kinds returns every resource kind in canonical order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds[:])
	return out
}

// ParseKind converts a user supplied name (case-insensitive) into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResourceKind, s)
}

// Resources is a quantity of each resource kind. Values are never clamped:
// a negative component means the amount is not affordable.
type Resources struct {
	Lumber int64 `json:"lumber" yaml:"lumber"`
	Clay   int64 `json:"clay" yaml:"clay"`
	Iron   int64 `json:"iron" yaml:"iron"`
	Crop   int64 `json:"crop" yaml:"crop"`
}

// NewResources builds a Resources value in canonical kind order.
func NewResources(lumber, clay, iron, crop int64) Resources {
	return Resources{Lumber: lumber, Clay: clay, Iron: iron, Crop: crop}
}

// Add returns the componentwise sum r + o.
func (r Resources) Add(o Resources) Resources {
	return Resources{
		Lumber: r.Lumber + o.Lumber,
		Clay:   r.Clay + o.Clay,
		Iron:   r.Iron + o.Iron,
		Crop:   r.Crop + o.Crop,
	}
}

// Sub returns the componentwise difference r - o. Components may go negative.
func (r Resources) Sub(o Resources) Resources {
	return Resources{
		Lumber: r.Lumber - o.Lumber,
		Clay:   r.Clay - o.Clay,
		Iron:   r.Iron - o.Iron,
		Crop:   r.Crop - o.Crop,
	}
}

// Scale multiplies every component by k.
func (r Resources) Scale(k int) Resources {
	m := int64(k)
	return Resources{
		Lumber: r.Lumber * m,
		Clay:   r.Clay * m,
		Iron:   r.Iron * m,
		Crop:   r.Crop * m,
	}
}

// Get returns the component for kind k.
func (r Resources) Get(k Kind) (int64, error) {
	switch k {
	case Lumber:
		return r.Lumber, nil
	case Clay:
		return r.Clay, nil
	case Iron:
		return r.Iron, nil
	case Crop:
		return r.Crop, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownResourceKind, string(k))
	}
}

// Kinds returns the dimension names of r.
func (r Resources) Kinds() []Kind {
	return Kinds()
}

// Total returns the sum of all components.
func (r Resources) Total() int64 {
	return r.Lumber + r.Clay + r.Iron + r.Crop
}

// IsInfeasible reports whether any component is negative.
func (r Resources) IsInfeasible() bool {
	return r.Lumber < 0 || r.Clay < 0 || r.Iron < 0 || r.Crop < 0
}

// ZeroOut returns a copy of r with the component for kind k set to 0.
func (r Resources) ZeroOut(k Kind) (Resources, error) {
	switch k {
	case Lumber:
		r.Lumber = 0
	case Clay:
		r.Clay = 0
	case Iron:
		r.Iron = 0
	case Crop:
		r.Crop = 0
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownResourceKind, string(k))
	}
	return r, nil
}

// String renders r as "lumber=1,clay=2,iron=3,crop=4".
func (r Resources) String() string {
	return fmt.Sprintf("lumber=%d,clay=%d,iron=%d,crop=%d", r.Lumber, r.Clay, r.Iron, r.Crop)
}

// ParseResources parses either four positional values ("5500,3900,7100,3000")
// or named values ("lumber=5500,crop=3000"). Omitted named kinds are zero.
func ParseResources(s string) (Resources, error) {
	var r Resources
	s = strings.TrimSpace(s)
	if s == "" {
		return r, fmt.Errorf("%w: empty value", ErrInvalidResources)
	}

	parts := strings.Split(s, ",")
	if !strings.Contains(s, "=") {
		if len(parts) != len(allKinds) {
			return r, fmt.Errorf("%w: expected %d comma-separated values, got %d", ErrInvalidResources, len(allKinds), len(parts))
		}
		values := make([]int64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return r, fmt.Errorf("%w: %q is not an integer", ErrInvalidResources, strings.TrimSpace(p))
			}
			values[i] = v
		}
		return NewResources(values[0], values[1], values[2], values[3]), nil
	}

	seen := make(map[Kind]bool, len(allKinds))
	for _, p := range parts {
		name, raw, ok := strings.Cut(p, "=")
		if !ok {
			return r, fmt.Errorf("%w: %q is not a kind=value pair", ErrInvalidResources, strings.TrimSpace(p))
		}
		k, err := ParseKind(name)
		if err != nil {
			return r, err
		}
		if seen[k] {
			return r, fmt.Errorf("%w: %s given more than once", ErrInvalidResources, k)
		}
		seen[k] = true
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return r, fmt.Errorf("%w: %q is not an integer", ErrInvalidResources, strings.TrimSpace(raw))
		}
		r = r.with(k, v)
	}
	return r, nil
}

func (r Resources) with(k Kind, v int64) Resources {
	switch k {
	case Lumber:
		r.Lumber = v
	case Clay:
		r.Clay = v
	case Iron:
		r.Iron = v
	case Crop:
		r.Crop = v
	}
	return r
}
