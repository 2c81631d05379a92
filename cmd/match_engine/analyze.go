package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full match analysis pipeline",
	Long:  "Run scoring, soft-skill detection, impact calculation, recommendations, trend analysis, and consistency validation for one resume/job pair.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile    string
	analyzeOutputFile   string
	analyzeConfigFile   string
	analyzeDatabaseURL  string
	analyzeTaxonomyPath string
	analyzeTrendPoints  int
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to analysis input JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to config JSON file")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL URL for the analysis history store")
	analyzeCmd.Flags().StringVar(&analyzeTaxonomyPath, "taxonomy", "", "Path to a taxonomy override JSON file")
	analyzeCmd.Flags().IntVar(&analyzeTrendPoints, "trend-points", 0, "History records feeding trend analysis (default 5)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted breakdowns to stderr")

	if err := analyzeCmd.MarkFlagRequired("in"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(analyzeConfigFile, analyzeDatabaseURL, analyzeTaxonomyPath, analyzeTrendPoints, analyzeVerbose)
	if err != nil {
		return err
	}

	input, err := loadAnalysisInput(analyzeInputFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	analyzer, closer, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer()

	output, err := analyzer.Run(ctx, input)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintScoring(&output.Scoring)
		printer.PrintRecommendations(&output.Recommendations)
		printer.PrintImpact(&output.Impact)
		printer.PrintSoftSkills(&output.SoftSkills)
		printer.PrintTrend(&output.Trend)
		printer.PrintValidation(&output.Validation)
	}

	if err := writeJSON(analyzeOutputFile, output); err != nil {
		return err
	}
	if analyzeOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Analysis %s complete (overall match %.2f)\n", output.AnalysisID, output.Scoring.OverallMatch)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)
	}
	return nil
}
