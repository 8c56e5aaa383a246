package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/troop-optimizer/internal/catalog"
	"github.com/jonathan/troop-optimizer/internal/observability"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [name-or-path]",
	Short: "List the units of a catalog and their costs",
	Long:  "Prints a built-in tribe catalog (default spartans) or a JSON/YAML catalog file.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

var catalogJSON bool

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Print the catalog as JSON")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	cat, err := catalog.Resolve(name)
	if err != nil {
		return err
	}

	if catalogJSON {
		jsonBytes, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintCatalog(cat)
	return nil
}
