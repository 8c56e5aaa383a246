// Package types provides type definitions for structured data used throughout the troop-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// PairResult is the optimization outcome for one unordered pair of catalog units.
type PairResult struct {
	Troop1     string     `json:"troop1"`
	Troop2     string     `json:"troop2"`
	Allocation Allocation `json:"allocation"`
}

// CompareReport ranks every unit pair of a catalog against one budget.
type CompareReport struct {
	RunID      uuid.UUID    `json:"run_id"`
	Tribe      string       `json:"tribe"`
	Budget     Resources    `json:"budget"`
	CoarseStep int          `json:"coarse_step"`
	FineWindow int          `json:"fine_window"`
	Exclude    Kind         `json:"exclude,omitempty"`
	Results    []PairResult `json:"results"`
}

// Best returns the top ranked result, or nil for an empty report.
func (r *CompareReport) Best() *PairResult {
	if r == nil || len(r.Results) == 0 {
		return nil
	}
	return &r.Results[0]
}
