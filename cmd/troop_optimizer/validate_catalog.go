package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/troop-optimizer/internal/catalog"
	"github.com/jonathan/troop-optimizer/internal/observability"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate a catalog file against the catalog schema",
	Long:  "Checks a JSON or YAML catalog file against schemas/catalog.schema.json, then checks unit names are present and unique and costs are non-negative.",
	RunE:  runValidateCatalog,
}

var validateCatalogFile string

func init() {
	validateCatalogCmd.Flags().StringVarP(&validateCatalogFile, "file", "f", "", "Path to the catalog file (required)")

	if err := validateCatalogCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCatalogCmd)
}

func runValidateCatalog(_ *cobra.Command, _ []string) error {
	cat, err := catalog.LoadFile(validateCatalogFile)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintCatalogValid(cat)
	return nil
}
