package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/trend"
	"github.com/jonathan/resume-matcher/internal/types"
)

// loadAnalysisInput reads and decodes an AnalysisInput JSON file.
func loadAnalysisInput(path string) (*types.AnalysisInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var input types.AnalysisInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return &input, nil
}

// resolveConfig merges an optional config file with flag values. Flags win.
func resolveConfig(configPath, dbURL, taxonomyPath string, trendPoints int, verbose bool) (config.Config, error) {
	flags := config.Config{
		DatabaseURL:    dbURL,
		TaxonomyPath:   taxonomyPath,
		TrendMaxPoints: trendPoints,
		Verbose:        verbose,
	}
	if configPath == "" {
		return flags, flags.Validate()
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	merged.Verbose = verbose || fileCfg.Verbose
	return merged, merged.Validate()
}

// buildAnalyzer assembles the analyzer from configuration: taxonomy override
// file if set, PostgreSQL history store if a database URL is configured. The
// returned closer is non-nil when a database connection was opened.
func buildAnalyzer(ctx context.Context, cfg config.Config) (*analysis.Analyzer, func(), error) {
	tab := taxonomy.Default()
	if cfg.TaxonomyPath != "" {
		loaded, err := taxonomy.LoadTable(cfg.TaxonomyPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
		tab = loaded
	}

	var repo trend.Repository
	closer := func() {}
	if cfg.DatabaseURL != "" {
		pg, err := trend.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo = pg
		closer = pg.Close
	}

	return analysis.New(repo, tab, cfg.TrendMaxPoints), closer, nil
}

// writeJSON marshals v with indentation to the given path, or to stdout when
// path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", data)
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
