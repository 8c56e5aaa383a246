package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/troop-optimizer/internal/config"
	"github.com/jonathan/troop-optimizer/internal/observability"
	"github.com/jonathan/troop-optimizer/internal/pipeline"
	schemadocs "github.com/jonathan/troop-optimizer/schemas"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank every unit pair of a catalog against one budget",
	Long: `Optimizes every unordered pair of units in the catalog and ranks them by remaining sum, then by how balanced the counts are.

Configuration can be loaded from a JSON or YAML file using --config. Command-line arguments override config file values.`,
	RunE: runCompare,
}

var (
	compareFlags searchFlags
	compareTop   int
	compareOut   string
)

func init() {
	compareFlags.register(compareCmd)

	compareCmd.Flags().IntVar(&compareTop, "top", 0, "Number of ranked pairs to print (default 5)")
	compareCmd.Flags().StringVarP(&compareOut, "out", "o", "", "Write the full ranking as JSON to this file")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadCommandConfig(compareFlags.configPath)
	if err != nil {
		return err
	}
	if err := compareFlags.apply(cmd.Flags().Changed, &cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("top") {
		cfg.Top = compareTop
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	opts, err := resolveCompare(cfg)
	if err != nil {
		return err
	}

	opts.Logger = observability.NewLogger(os.Stderr, cfg.Verbose)
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Step, event.Message)
		}
	}

	report, err := pipeline.RunCompare(ctx, *opts)
	if err != nil {
		return err
	}

	if best := report.Best(); best != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Best pair: %s + %s\n", best.Troop1, best.Troop2)
		observability.NewPrinter(os.Stdout).PrintSummary(&best.Allocation)
	}
	observability.NewPrinter(os.Stdout).PrintComparison(report, cfg.Top)

	if compareOut == "" {
		return nil
	}
	if err := writeReport(compareOut, schemadocs.CompareReport, report); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", compareOut)
	return nil
}
