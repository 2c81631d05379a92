package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/analysis"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Pre-flight check an analysis input file",
	Long:  "Check an analysis input JSON file for hard errors and warnings without running the pipeline.",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to analysis input JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	input, err := loadAnalysisInput(validateInputFile)
	if err != nil {
		return err
	}

	result := analysis.ValidateInput(input)
	for _, msg := range result.Errors {
		_, _ = fmt.Fprintf(os.Stdout, "error: %s\n", msg)
	}
	for _, msg := range result.Warnings {
		_, _ = fmt.Fprintf(os.Stdout, "warning: %s\n", msg)
	}

	if !result.IsValid {
		return fmt.Errorf("input is not valid (%d error(s))", len(result.Errors))
	}
	_, _ = fmt.Fprintf(os.Stdout, "Input is valid (%d warning(s))\n", len(result.Warnings))
	return nil
}
