package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"chargekit/ocpicheck/pkg/cli"
	"chargekit/ocpicheck/pkg/ocpi"
)

var validateFlags struct {
	file       string
	dir        string
	objectType string
	format     string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate OCPI payload files",
	Long: `Validate OCPI JSON payload files.

Each file is parsed and checked for required fields and field types.
Payloads that pass the structural check are then checked against the
OCPI business rules for the given object type.

Examples:
  # Validate a single file
  ocpicheck validate --type token --file token.json

  # Validate every .json file in a directory
  ocpicheck validate --type cdr --dir payloads/

  # JSON output for CI/CD
  ocpicheck validate --type location --file loc.json --format json`,
	RunE: validateFiles,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "payload file to validate")
	validateCmd.Flags().StringVarP(&validateFlags.dir, "dir", "d", "", "directory of payload files")
	validateCmd.Flags().StringVarP(&validateFlags.objectType, "type", "t", "", "object type: location, token, session, cdr, tariff")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

// FileResult is the validation outcome for a single file.
type FileResult struct {
	File   string                `json:"file"`
	Result ocpi.ValidationResult `json:"result"`
}

func validateFiles(cmd *cobra.Command, args []string) error {
	if validateFlags.file == "" && validateFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}
	if validateFlags.objectType == "" {
		return fmt.Errorf("--type must be specified")
	}

	objectType, err := ocpi.ParseObjectType(validateFlags.objectType)
	if err != nil {
		return err
	}

	format, err := cli.ParseOutputFormat(validateFlags.format)
	if err != nil {
		return err
	}

	files, err := collectPayloadFiles(validateFlags.file, validateFlags.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no payload files found")
	}

	validator := ocpi.NewValidator()
	results := make([]FileResult, 0, len(files))

	var progress cli.ProgressReporter
	if verbose && format == cli.FormatText && len(files) > 1 {
		progress = cli.NewProgressReporter(nil)
		progress.Start(len(files))
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		results = append(results, FileResult{
			File:   file,
			Result: validator.Validate(objectType, data),
		})
		if progress != nil {
			progress.Advance(file)
		}
	}
	if progress != nil {
		progress.Finish()
	}

	if format == cli.FormatJSON {
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, results); err != nil {
			return err
		}
	} else {
		printResultsText(results)
	}

	for _, r := range results {
		if !r.Result.IsValid {
			return cli.NewCommandError("validate", fmt.Errorf("validation failed"))
		}
	}
	return nil
}

// collectPayloadFiles expands the --file and --dir flags into the list
// of files to validate.
func collectPayloadFiles(file, dir string) ([]string, error) {
	var files []string

	if file != "" {
		files = append(files, file)
	}

	if dir != "" {
		matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list payload files: %w", err)
		}
		files = append(files, matches...)
	}

	return files, nil
}

func printResultsText(results []FileResult) {
	totalErrors := 0
	invalidFiles := 0

	for _, r := range results {
		fmt.Printf("Validating %s (%s)...\n", r.File, r.Result.ObjectType)

		if r.Result.IsValid {
			fmt.Println("✓ Valid")
		} else {
			invalidFiles++
			for _, e := range r.Result.Errors {
				fmt.Printf("✗ %s [%s]\n", e.Error(), e.Kind)
				totalErrors++
			}
		}
		fmt.Println()
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d file(s) checked, %d invalid, %d error(s)\n",
		len(results), invalidFiles, totalErrors)
}
