package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/trend"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the stored score trend for a resume/job pair",
	Long:  "Read the analysis history for a resume/job pair from the database and print its score trend.",
	RunE:  runTrend,
}

var (
	trendResumeID    string
	trendJobID       string
	trendDatabaseURL string
	trendPoints      int
)

func init() {
	trendCmd.Flags().StringVar(&trendResumeID, "resume-id", "", "Resume identifier (required)")
	trendCmd.Flags().StringVar(&trendJobID, "job-id", "", "Job identifier (required)")
	trendCmd.Flags().StringVar(&trendDatabaseURL, "db-url", "", "PostgreSQL URL for the analysis history store")
	trendCmd.Flags().IntVar(&trendPoints, "trend-points", 0, "History records feeding trend analysis (default 5)")

	if err := trendCmd.MarkFlagRequired("resume-id"); err != nil {
		panic(err)
	}
	if err := trendCmd.MarkFlagRequired("job-id"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, _ []string) error {
	databaseURL := trendDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx := context.Background()
	repo, err := trend.ConnectPostgres(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	history, err := repo.Get(ctx, trendResumeID, trendJobID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "No analysis history for resume %s / job %s\n", trendResumeID, trendJobID)
		return nil
	}

	return writeJSON("", trend.Analyze(history, trendPoints))
}
