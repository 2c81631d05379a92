package main

import (
	"context"

	"github.com/spf13/cobra"
)

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Run scoring and recommendations only",
	Long:  "Run the low-latency analysis variant: scoring and recommendations without impact calculation, soft-skill detection, or trend persistence.",
	RunE:  runQuick,
}

var (
	quickInputFile    string
	quickOutputFile   string
	quickTaxonomyPath string
)

func init() {
	quickCmd.Flags().StringVarP(&quickInputFile, "in", "i", "", "Path to analysis input JSON file (required)")
	quickCmd.Flags().StringVarP(&quickOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	quickCmd.Flags().StringVar(&quickTaxonomyPath, "taxonomy", "", "Path to a taxonomy override JSON file")

	if err := quickCmd.MarkFlagRequired("in"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(quickCmd)
}

func runQuick(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig("", "", quickTaxonomyPath, 0, false)
	if err != nil {
		return err
	}

	input, err := loadAnalysisInput(quickInputFile)
	if err != nil {
		return err
	}

	analyzer, closer, err := buildAnalyzer(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer closer()

	output, err := analyzer.RunQuick(input)
	if err != nil {
		return err
	}

	return writeJSON(quickOutputFile, output)
}
