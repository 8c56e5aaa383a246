// Package pipeline provides the high-level orchestration for comparing every unit pair of a catalog.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/troop-optimizer/internal/observability"
	"github.com/jonathan/troop-optimizer/internal/optimizer"
	"github.com/jonathan/troop-optimizer/internal/types"
)

// Progress steps and categories reported through ProgressCallback.
const (
	StepOptimizePair = "optimize_pair"
	StepRankPairs    = "rank_pairs"
	CategoryCompare  = "compare"
)

// ProgressEvent represents a progress update during a compare run
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when compare progress occurs.
// Calls are serialized even when pairs run concurrently.
type ProgressCallback func(event ProgressEvent)

// CompareOptions holds configuration for a compare run
type CompareOptions struct {
	Catalog    *types.Catalog
	Budget     types.Resources
	CoarseStep int
	FineWindow int
	Exclude    types.Kind
	// Workers bounds how many pairs are optimized at once. 0 or 1 runs them one by one.
	Workers    int
	Logger     logr.Logger
	OnProgress ProgressCallback
}

type unitPair struct {
	index int
	a, b  types.Unit
}

// pairs lists every unordered pair (i < j) in catalog order.
func pairs(units []types.Unit) []unitPair {
	var out []unitPair
	for i := 0; i < len(units); i++ {
		for j := i + 1; j < len(units); j++ {
			out = append(out, unitPair{index: len(out), a: units[i], b: units[j]})
		}
	}
	return out
}

// RunCompare optimizes every unordered unit pair of the catalog against one
// budget and ranks the results: lowest remaining score first, then the most
// balanced counts, then catalog pair order.
func RunCompare(ctx context.Context, opts CompareOptions) (*types.CompareReport, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if len(opts.Catalog.Units) < 2 {
		return nil, fmt.Errorf("catalog %s needs at least two units to compare, has %d",
			opts.Catalog.Tribe, len(opts.Catalog.Units))
	}

	logger := opts.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	runID := uuid.New()
	logger = logger.WithValues("run_id", runID.String())

	var progressMu sync.Mutex
	emitProgress := func(step, message string, content any) {
		if opts.OnProgress == nil {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: CategoryCompare,
			Message:  message,
			RunID:    runID.String(),
			Content:  content,
		})
	}

	todo := pairs(opts.Catalog.Units)
	results := make([]types.PairResult, len(todo))

	logger.V(observability.DEBUG).Info("Comparing unit pairs", "tribe", opts.Catalog.Tribe, "pairs", len(todo))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Workers))

	for _, p := range todo {
		p := p
		g.Go(func() error {
			alloc, err := optimizer.Optimize(gCtx, &types.OptimizeRequest{
				Budget:     opts.Budget,
				Cost1:      p.a.Cost,
				Cost2:      p.b.Cost,
				CoarseStep: opts.CoarseStep,
				FineWindow: opts.FineWindow,
				Exclude:    opts.Exclude,
			})
			if err != nil {
				return fmt.Errorf("pair %s + %s failed: %w", p.a.Name, p.b.Name, err)
			}

			results[p.index] = types.PairResult{Troop1: p.a.Name, Troop2: p.b.Name, Allocation: *alloc}

			logger.V(observability.DEBUG).Info("Pair optimized",
				"troop1", p.a.Name, "troop2", p.b.Name,
				"n1", alloc.N1, "n2", alloc.N2, "remaining", alloc.LeftoverSum)
			emitProgress(StepOptimizePair,
				fmt.Sprintf("%s + %s: %s", p.a.Name, p.b.Name, observability.SummaryLine(alloc)),
				results[p.index])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compare run failed: %w", err)
	}

	rankResults(results)
	emitProgress(StepRankPairs, fmt.Sprintf("Ranked %d pairs", len(results)), nil)

	return &types.CompareReport{
		RunID:      runID,
		Tribe:      opts.Catalog.Tribe,
		Budget:     opts.Budget,
		CoarseStep: opts.CoarseStep,
		FineWindow: opts.FineWindow,
		Exclude:    opts.Exclude,
		Results:    results,
	}, nil
}

// rankResults orders results by score, then balance. The sort is stable, so
// equal pairs keep catalog order.
func rankResults(results []types.PairResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Allocation, results[j].Allocation
		if a.LeftoverSum != b.LeftoverSum {
			return a.LeftoverSum < b.LeftoverSum
		}
		return candidateDiff(a) < candidateDiff(b)
	})
}

func candidateDiff(a types.Allocation) int {
	return types.Candidate{N1: a.N1, N2: a.N2}.Diff()
}
