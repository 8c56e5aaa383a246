// Package optimizer splits a resource budget between two unit types with a coarse-to-fine grid search.
package optimizer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// row is the inner n2 sweep for one fixed n1
type row struct {
	n1   int
	lo   int
	hi   int
	step int
}

// pick accumulates the first best candidate of a run of rows
type pick struct {
	best  incumbent
	found bool
}

func (p *pick) offer(c incumbent) {
	if !p.found {
		p.best = c
		p.found = true
		return
	}
	p.best.offer(c)
}

// coarseRows lists the strided phase one rows: n1 = 0, step, 2*step, ... while n1 <= M1,
// each sweeping n2 = 0, step, ... while n2 <= M2(n1).
func (e evaluator) coarseRows(step int) []row {
	var rows []row
	maxN1 := MaxAffordable(e.budget, e.cost1)
	for n1 := 0; n1 <= maxN1; n1 += step {
		remaining := e.remainingAfter(n1)
		if remaining.IsInfeasible() {
			continue
		}
		rows = append(rows, row{n1: n1, lo: 0, hi: MaxAffordable(remaining, e.cost2), step: step})
	}
	return rows
}

// fineRows lists the unit-stride phase two rows in a window of the given
// half-width around center. The n1 range is not capped by affordability;
// unaffordable rows are dropped instead.
func (e evaluator) fineRows(center incumbent, window int) []row {
	var rows []row
	n2Lo := max(0, center.n2-window)
	n2Hi := center.n2 + window
	for n1 := max(0, center.n1-window); n1 <= center.n1+window; n1++ {
		remaining := e.remainingAfter(n1)
		if remaining.IsInfeasible() {
			continue
		}
		rows = append(rows, row{n1: n1, lo: n2Lo, hi: min(MaxAffordable(remaining, e.cost2), n2Hi), step: 1})
	}
	return rows
}

// scanRow offers every affordable candidate of r to p in ascending n2 order
func (e evaluator) scanRow(r row, p *pick) {
	for n2 := r.lo; n2 <= r.hi; n2 += r.step {
		if c, ok := e.evaluate(r.n1, n2); ok {
			p.offer(c)
		}
	}
}

// sweep folds every candidate of rows into seed. With more than one worker the
// rows are cut into contiguous chunks scanned concurrently; chunk winners are
// folded into seed in row order, which yields the same incumbent as a
// sequential scan.
func (e evaluator) sweep(ctx context.Context, rows []row, seed incumbent, workers int) (incumbent, error) {
	if workers <= 1 || len(rows) < 2 {
		p := pick{best: seed, found: true}
		for _, r := range rows {
			if err := ctx.Err(); err != nil {
				return seed, err
			}
			e.scanRow(r, &p)
		}
		return p.best, nil
	}

	chunks := splitRows(rows, workers)
	winners := make([]pick, len(chunks))

	g, gCtx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			for _, r := range chunk {
				if err := gCtx.Err(); err != nil {
					return err
				}
				e.scanRow(r, &winners[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return seed, err
	}

	best := seed
	for _, w := range winners {
		if w.found {
			best.offer(w.best)
		}
	}
	return best, nil
}

// splitRows cuts rows into at most n contiguous, order-preserving chunks
func splitRows(rows []row, n int) [][]row {
	if n > len(rows) {
		n = len(rows)
	}
	size := (len(rows) + n - 1) / n
	chunks := make([][]row, 0, n)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}
