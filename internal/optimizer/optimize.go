// Package optimizer splits a resource budget between two unit types with a coarse-to-fine grid search.
package optimizer

import (
	"context"

	"github.com/jonathan/troop-optimizer/internal/types"
)

// Optimize finds unit counts (n1, n2) that leave the least budget unspent,
// preferring balanced counts on ties.
//
// Phase one samples the grid with stride CoarseStep. Phase two scans every
// point within FineWindow of the phase one winner and can only match or
// improve on it. The search is heuristic: optima between coarse samples and
// outside the window are missed.
func Optimize(ctx context.Context, req *types.OptimizeRequest) (*types.Allocation, error) {
	if req == nil {
		return nil, &Error{Message: "optimize request is nil"}
	}
	if err := req.Validate(); err != nil {
		return nil, &Error{Message: "invalid optimize request", Cause: err}
	}

	e := newEvaluator(req)

	coarse, err := e.sweep(ctx, e.coarseRows(req.CoarseStep), baseline(req.Budget), req.Workers)
	if err != nil {
		return nil, &Error{Message: "coarse sweep interrupted", Cause: err}
	}

	fine, err := e.sweep(ctx, e.fineRows(coarse, req.FineWindow), coarse, req.Workers)
	if err != nil {
		return nil, &Error{Message: "fine sweep interrupted", Cause: err}
	}

	spent := e.spent(fine.n1, fine.n2)
	return &types.Allocation{
		N1:          fine.n1,
		N2:          fine.n2,
		LeftoverSum: fine.score,
		Leftover:    req.Budget.Sub(spent),
		Spent:       spent,
		Coarse:      coarse.candidate(),
	}, nil
}
