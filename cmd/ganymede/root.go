package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ganymede",
	Short: "Ganymede - ACPI Machine Language decoding engine",
	Long: `Ganymede decodes ACPI Machine Language (AML) byte streams into typed
trees and keeps a catalog of parse outcomes across firmware collections.

It provides:
  - Recursive-descent AML decoding with strict resource limits
  - Batch scanning of firmware dump directories
  - Watch mode that re-parses files as they change
  - A SQLite-backed catalog of parse records with retention`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "ganymede.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
