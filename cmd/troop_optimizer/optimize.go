package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/troop-optimizer/internal/config"
	"github.com/jonathan/troop-optimizer/internal/observability"
	"github.com/jonathan/troop-optimizer/internal/optimizer"
	"github.com/jonathan/troop-optimizer/internal/schemas"
	"github.com/jonathan/troop-optimizer/internal/types"
	schemadocs "github.com/jonathan/troop-optimizer/schemas"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the unit counts that leave the least budget unspent",
	Long: `Splits a budget between two unit types with a coarse sweep over a strided grid followed by a fine sweep around the coarse winner.

Units are named from a catalog (--troop1/--troop2) or given as raw costs (--cost1/--cost2).
Configuration can be loaded from a JSON or YAML file using --config. Command-line arguments override config file values.`,
	RunE: runOptimize,
}

var (
	optimizeFlags  searchFlags
	optimizeTroop1 string
	optimizeTroop2 string
	optimizeCost1  string
	optimizeCost2  string
	optimizeOut    string
)

func init() {
	optimizeFlags.register(optimizeCmd)

	optimizeCmd.Flags().StringVar(&optimizeTroop1, "troop1", "", "First unit name from the catalog (mutually exclusive with --cost1)")
	optimizeCmd.Flags().StringVar(&optimizeTroop2, "troop2", "", "Second unit name from the catalog (mutually exclusive with --cost2)")
	optimizeCmd.Flags().StringVar(&optimizeCost1, "cost1", "", "Raw cost of the first unit, same format as --budget")
	optimizeCmd.Flags().StringVar(&optimizeCost2, "cost2", "", "Raw cost of the second unit, same format as --budget")
	optimizeCmd.Flags().StringVarP(&optimizeOut, "out", "o", "", "Write the result as JSON to this file")

	optimizeCmd.MarkFlagsMutuallyExclusive("troop1", "cost1")
	optimizeCmd.MarkFlagsMutuallyExclusive("troop2", "cost2")

	rootCmd.AddCommand(optimizeCmd)
}

// applyUnitFlags copies explicitly set unit flags over cfg. A flag replaces
// whatever the config file said about the same unit.
func applyUnitFlags(changed func(string) bool, cfg *config.Config) error {
	if changed("troop1") {
		cfg.Troop1, cfg.Cost1 = optimizeTroop1, nil
	}
	if changed("troop2") {
		cfg.Troop2, cfg.Cost2 = optimizeTroop2, nil
	}
	if changed("cost1") {
		cost, err := types.ParseResources(optimizeCost1)
		if err != nil {
			return fmt.Errorf("invalid --cost1: %w", err)
		}
		cfg.Troop1, cfg.Cost1 = "", &cost
	}
	if changed("cost2") {
		cost, err := types.ParseResources(optimizeCost2)
		if err != nil {
			return fmt.Errorf("invalid --cost2: %w", err)
		}
		cfg.Troop2, cfg.Cost2 = "", &cost
	}
	return nil
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	cfg, err := loadCommandConfig(optimizeFlags.configPath)
	if err != nil {
		return err
	}

	// Step 2: Apply CLI overrides (only flags explicitly set)
	if err := optimizeFlags.apply(cmd.Flags().Changed, &cfg); err != nil {
		return err
	}
	if err := applyUnitFlags(cmd.Flags().Changed, &cfg); err != nil {
		return err
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())

	logger := observability.NewLogger(os.Stderr, cfg.Verbose)
	logger.V(observability.DEBUG).Info("Resolved configuration",
		"catalog", cfg.Catalog, "step", cfg.Step, "window", cfg.WindowOrDefault(), "exclude", cfg.Exclude)

	// Step 4: Resolve units and build the request
	in, err := resolveOptimize(cfg)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintRequest(in.Troop1, in.Troop2, &in.Request)
	}

	// Step 5: Optimize
	alloc, err := optimizer.Optimize(ctx, &in.Request)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}
	logger.V(observability.DEBUG).Info("Coarse winner",
		"n1", alloc.Coarse.N1, "n2", alloc.Coarse.N2, "score", alloc.Coarse.Score)
	logger.V(observability.DEBUG).Info("Final winner",
		"n1", alloc.N1, "n2", alloc.N2, "score", alloc.LeftoverSum)

	printer.PrintSummary(alloc)
	printer.PrintAllocation(in.Troop1, in.Troop2, alloc)

	// Step 6: Optionally write the JSON report
	if optimizeOut == "" {
		return nil
	}
	report := &types.OptimizeReport{
		RunID:      uuid.New(),
		Tribe:      in.Tribe,
		Troop1:     in.Troop1,
		Troop2:     in.Troop2,
		Budget:     in.Request.Budget,
		Cost1:      in.Request.Cost1,
		Cost2:      in.Request.Cost2,
		CoarseStep: in.Request.CoarseStep,
		FineWindow: in.Request.FineWindow,
		Exclude:    in.Request.Exclude,
		Allocation: *alloc,
	}
	if err := writeReport(optimizeOut, schemadocs.OptimizeReport, report); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", optimizeOut)
	return nil
}

// writeReport validates v against schemaContent and writes it as indented JSON.
func writeReport(path, schemaContent string, v any) error {
	if err := schemas.ValidateValue(schemaContent, v); err != nil {
		return fmt.Errorf("report does not match schema: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
