// Package optimizer splits a resource budget between two unit types with a coarse-to-fine grid search.
package optimizer

import (
	"math"

	"github.com/jonathan/troop-optimizer/internal/types"
)

// MaxAffordable returns how many units of the given cost fit into available:
// the floor of available[k]/cost[k] minimised over every kind with a positive cost.
// A cost with no positive component yields 0. A negative available component
// yields a negative bound.
func MaxAffordable(available, cost types.Resources) int {
	var (
		best  int64 = math.MaxInt64
		found bool
	)
	for _, k := range types.Kinds() {
		c, _ := cost.Get(k)
		if c <= 0 {
			continue
		}
		a, _ := available.Get(k)
		if q := floorDiv(a, c); !found || q < best {
			best = q
			found = true
		}
	}
	if !found {
		return 0
	}
	return clampInt(best)
}

// floorDiv divides rounding toward negative infinity. b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func clampInt(v int64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	if v < math.MinInt {
		return math.MinInt
	}
	return int(v)
}
