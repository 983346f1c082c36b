package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"chargekit/ocpicheck/pkg/ocpi"
	"chargekit/ocpicheck/samples"
)

var samplesFlags struct {
	output string
}

var samplesCmd = &cobra.Command{
	Use:   "samples [type]",
	Short: "Print or export bundled sample payloads",
	Long: `Print a bundled known-good sample payload for an object type,
or export all samples to a directory.

The samples are valid against the validator and can be used as seed
files for the validate and watch commands.

Examples:
  # List available samples
  ocpicheck samples

  # Print the token sample
  ocpicheck samples token

  # Export all samples to a directory
  ocpicheck samples --output payloads/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSamples,
}

func init() {
	rootCmd.AddCommand(samplesCmd)

	samplesCmd.Flags().StringVarP(&samplesFlags.output, "output", "o", "", "write all samples to this directory")
}

func runSamples(cmd *cobra.Command, args []string) error {
	if samplesFlags.output != "" {
		return exportSamples(samplesFlags.output)
	}

	if len(args) == 0 {
		fmt.Println("Available samples:")
		for _, name := range samples.Names() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	objectType, err := ocpi.ParseObjectType(args[0])
	if err != nil {
		return err
	}

	data, err := samples.Read(objectType)
	if err != nil {
		return err
	}

	fmt.Print(string(data))
	if !strings.HasSuffix(string(data), "\n") {
		fmt.Println()
	}
	return nil
}

// exportSamples writes every bundled sample into dir, creating it if
// needed.
func exportSamples(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	for _, objectType := range ocpi.ObjectTypes {
		data, err := samples.Read(objectType)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, string(objectType)+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("✓ %s\n", path)
	}
	return nil
}
