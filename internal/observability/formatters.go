// Package observability provides formatted console output and diagnostic logging for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/troop-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// SummaryLine is the one-line result of an optimization.
func SummaryLine(a *types.Allocation) string {
	return fmt.Sprintf("Troop 1: %d, Troop 2: %d, Remaining Sum: %d", a.N1, a.N2, a.LeftoverSum)
}

// PrintSummary writes the one-line result without decoration.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(a *types.Allocation) {
	if a == nil {
		return
	}
	fmt.Fprintln(p.out, SummaryLine(a))
}

// PrintRequest outputs the budget, both unit costs and the search parameters.
func (p *Printer) PrintRequest(troop1, troop2 string, req *types.OptimizeRequest) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Budget:   %s\n", req.Budget))
	sb.WriteString(fmt.Sprintf("Troop 1:  %s\n", troop1))
	sb.WriteString(fmt.Sprintf("  cost    %s\n", req.Cost1))
	sb.WriteString(fmt.Sprintf("Troop 2:  %s\n", troop2))
	sb.WriteString(fmt.Sprintf("  cost    %s\n", req.Cost2))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Step: %d  Window: %d", req.CoarseStep, req.FineWindow))
	if req.Exclude != "" {
		sb.WriteString(fmt.Sprintf("  Exclude: %s", req.Exclude))
	}
	if req.Workers > 1 {
		sb.WriteString(fmt.Sprintf("  Workers: %d", req.Workers))
	}

	p.printBox("OPTIMIZATION REQUEST", sb.String())
}

// PrintAllocation outputs the winning counts with the spent and leftover resources.
func (p *Printer) PrintAllocation(troop1, troop2 string, a *types.Allocation) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s x %d\n", troop1, a.N1))
	sb.WriteString(fmt.Sprintf("%s x %d\n", troop2, a.N2))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Spent:     %s\n", a.Spent))
	sb.WriteString(fmt.Sprintf("Leftover:  %s\n", a.Leftover))
	sb.WriteString(fmt.Sprintf("Score:     %d\n", a.LeftoverSum))
	sb.WriteString(fmt.Sprintf("Coarse:    (%d, %d) score %d", a.Coarse.N1, a.Coarse.N2, a.Coarse.Score))

	p.printBox("ALLOCATION", sb.String())
}

// PrintCatalog lists every unit of a catalog with its cost.
func (p *Printer) PrintCatalog(cat *types.Catalog) {
	if cat == nil || len(cat.Units) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d units:\n\n", len(cat.Units)))
	for i, u := range cat.Units {
		sb.WriteString(fmt.Sprintf("• %s\n", u.Name))
		sb.WriteString(fmt.Sprintf("  %d/%d/%d/%d (total %d)",
			u.Cost.Lumber, u.Cost.Clay, u.Cost.Iron, u.Cost.Crop, u.Cost.Total()))
		if i < len(cat.Units)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("CATALOG: %s", strings.ToUpper(cat.Tribe)), sb.String())
}

// PrintCatalogValid reports a catalog that passed validation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCatalogValid(cat *types.Catalog) {
	if cat == nil {
		return
	}
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4,
		fmt.Sprintf("✅ CATALOG %s IS VALID (%d units)", strings.ToUpper(cat.Tribe), len(cat.Units)))
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// PrintComparison outputs the top ranked unit pairs of a compare run.
// A non-positive top falls back to maxItemsToShow.
func (p *Printer) PrintComparison(report *types.CompareReport, top int) {
	if report == nil || len(report.Results) == 0 {
		return
	}
	if top <= 0 {
		top = maxItemsToShow
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Budget: %s\n", report.Budget))
	sb.WriteString(fmt.Sprintf("Pairs compared: %d\n\n", len(report.Results)))

	count := min(len(report.Results), top)
	for i := 0; i < count; i++ {
		r := report.Results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s + %s\n", i+1, r.Troop1, r.Troop2))
		sb.WriteString(fmt.Sprintf("    %d + %d, remaining %d", r.Allocation.N1, r.Allocation.N2, r.Allocation.LeftoverSum))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(report.Results) > count {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more pairs", len(report.Results)-count))
	}

	p.printBox(fmt.Sprintf("BEST PAIRS: %s", strings.ToUpper(report.Tribe)), sb.String())
}
