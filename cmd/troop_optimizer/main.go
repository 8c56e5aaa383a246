// Package main provides the entry point for the troop_optimizer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "troop_optimizer",
	Short: "Split a resource budget between two unit types",
	Long:  "troop_optimizer finds how many units of two types to build so that the least of a lumber/clay/iron/crop budget is left unspent, preferring balanced counts on ties.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
