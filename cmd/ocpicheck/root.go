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
	Use:   "ocpicheck",
	Short: "ocpicheck - OCPI payload validation toolkit",
	Long: `Ocpicheck validates OCPI JSON payloads against structural and
semantic rules.

It understands five object types: location, token, session, cdr and
tariff. Each payload is checked for required fields and field types
first; payloads that pass the structural check are then checked against
the OCPI business rules (coordinate ranges, currency and country codes,
whitelist consistency, charging period ordering, CDR total
reconciliation, and more).`,
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
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
