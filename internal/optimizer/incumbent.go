// Package optimizer splits a resource budget between two unit types with a coarse-to-fine grid search.
package optimizer

import (
	"math"

	"github.com/jonathan/troop-optimizer/internal/types"
)

// unsetDiff marks an incumbent whose balance has never been measured,
// so any real candidate with an equal score replaces it.
const unsetDiff = math.MaxInt

// incumbent is the best candidate seen so far in sweep order
type incumbent struct {
	n1, n2 int
	score  int64
	diff   int
}

// baseline is the "build nothing" incumbent every search starts from
func baseline(budget types.Resources) incumbent {
	return incumbent{score: budget.Total(), diff: unsetDiff}
}

// improvedBy reports whether c strictly beats the incumbent: lower score,
// or equal score with a smaller |n1-n2|. Equal candidates never replace it,
// so the first one found in sweep order wins.
func (b incumbent) improvedBy(c incumbent) bool {
	if c.score != b.score {
		return c.score < b.score
	}
	return c.diff < b.diff
}

// offer replaces the incumbent when c improves on it
func (b *incumbent) offer(c incumbent) {
	if b.improvedBy(c) {
		*b = c
	}
}

func (b incumbent) candidate() types.Candidate {
	return types.Candidate{N1: b.n1, N2: b.n2, Score: b.score}
}

// evaluator scores candidates for one request
type evaluator struct {
	budget  types.Resources
	cost1   types.Resources
	cost2   types.Resources
	exclude types.Kind
}

func newEvaluator(req *types.OptimizeRequest) evaluator {
	return evaluator{
		budget:  req.Budget,
		cost1:   req.Cost1,
		cost2:   req.Cost2,
		exclude: req.Exclude,
	}
}

// remainingAfter returns the budget left once n1 units of type one are bought
func (e evaluator) remainingAfter(n1 int) types.Resources {
	return e.budget.Sub(e.cost1.Scale(n1))
}

// spent returns the total cost of the (n1, n2) allocation
func (e evaluator) spent(n1, n2 int) types.Resources {
	return e.cost1.Scale(n1).Add(e.cost2.Scale(n2))
}

// evaluate scores (n1, n2). ok is false when the allocation is unaffordable.
func (e evaluator) evaluate(n1, n2 int) (c incumbent, ok bool) {
	leftover := e.budget.Sub(e.spent(n1, n2))
	if leftover.IsInfeasible() {
		return incumbent{}, false
	}
	return incumbent{n1: n1, n2: n2, score: e.score(leftover), diff: absDiff(n1, n2)}, true
}

// score sums the leftover, ignoring the excluded kind if one is set
func (e evaluator) score(leftover types.Resources) int64 {
	if e.exclude != "" {
		if zeroed, err := leftover.ZeroOut(e.exclude); err == nil {
			leftover = zeroed
		}
	}
	return leftover.Total()
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
