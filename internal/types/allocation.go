// Package types provides type definitions for structured data used throughout the troop-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OptimizeRequest holds the inputs of one coarse-to-fine optimization.
type OptimizeRequest struct {
	Budget     Resources `json:"budget"`
	Cost1      Resources `json:"cost1"`
	Cost2      Resources `json:"cost2"`
	CoarseStep int       `json:"coarse_step" validate:"min=1"`
	FineWindow int       `json:"fine_window" validate:"min=0"`
	// Exclude names one kind left out of the ranking score. Empty means none.
	Exclude Kind `json:"exclude,omitempty" validate:"omitempty,oneof=lumber clay iron crop"`
	// Workers > 1 evaluates sweep rows concurrently.
	Workers int `json:"workers,omitempty" validate:"min=0"`
}

// Validate validates the OptimizeRequest using the validator.
func (r *OptimizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Candidate is one (n1, n2) unit count pair together with its ranking score.
type Candidate struct {
	N1    int   `json:"n1"`
	N2    int   `json:"n2"`
	Score int64 `json:"score"`
}

// Diff returns |N1 - N2|, the balance tie-breaker.
func (c Candidate) Diff() int {
	if c.N1 > c.N2 {
		return c.N1 - c.N2
	}
	return c.N2 - c.N1
}

// Allocation is the outcome of an optimization run.
type Allocation struct {
	N1 int `json:"n1"`
	N2 int `json:"n2"`
	// LeftoverSum is the ranking score of the winner (excluded kind zeroed).
	LeftoverSum int64 `json:"leftover_sum"`
	// Leftover is the true remaining budget, never zeroed.
	Leftover Resources `json:"leftover"`
	Spent    Resources `json:"spent"`
	// Coarse is the phase one winner that seeded the fine sweep.
	Coarse Candidate `json:"coarse"`
}

// OptimizeReport is the JSON document written by the optimize command.
type OptimizeReport struct {
	RunID      uuid.UUID  `json:"run_id"`
	Tribe      string     `json:"tribe,omitempty"`
	Troop1     string     `json:"troop1"`
	Troop2     string     `json:"troop2"`
	Budget     Resources  `json:"budget"`
	Cost1      Resources  `json:"cost1"`
	Cost2      Resources  `json:"cost2"`
	CoarseStep int        `json:"coarse_step"`
	FineWindow int        `json:"fine_window"`
	Exclude    Kind       `json:"exclude,omitempty"`
	Allocation Allocation `json:"allocation"`
}
