package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnalysisInput_Valid(t *testing.T) {
	path := writeTempFile(t, "input.json", `{
		"resume_id": "resume-1",
		"job_id": "job-1",
		"resume_skills": ["React", "Node.js"],
		"job_skills": ["React", "Python"]
	}`)

	input, err := loadAnalysisInput(path)
	require.NoError(t, err)

	assert.Equal(t, "resume-1", input.ResumeID)
	assert.Equal(t, []string{"React", "Node.js"}, input.ResumeSkills)
}

func TestLoadAnalysisInput_MissingFile(t *testing.T) {
	_, err := loadAnalysisInput(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestLoadAnalysisInput_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, "input.json", `{broken`)

	_, err := loadAnalysisInput(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse input JSON")
}

func TestResolveConfig_FlagsWinOverFile(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{
		"database_url": "postgres://from-file",
		"trend_max_points": 7
	}`)

	cfg, err := resolveConfig(configPath, "postgres://from-flag", "", 0, true)
	require.NoError(t, err)

	assert.Equal(t, "postgres://from-flag", cfg.DatabaseURL)
	assert.Equal(t, 7, cfg.TrendMaxPoints)
	assert.True(t, cfg.Verbose)
}

func TestResolveConfig_NoConfigFile(t *testing.T) {
	cfg, err := resolveConfig("", "", "", 3, false)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.TrendMaxPoints)
}

func TestBuildAnalyzer_RunsEndToEnd(t *testing.T) {
	cfg, err := resolveConfig("", "", "", 0, false)
	require.NoError(t, err)

	analyzer, closer, err := buildAnalyzer(context.Background(), cfg)
	require.NoError(t, err)
	defer closer()

	out, err := analyzer.RunQuick(&types.AnalysisInput{
		ResumeID:     "resume-1",
		JobID:        "job-1",
		ResumeSkills: []string{"Go"},
		JobSkills:    []string{"Go", "Python"},
	})
	require.NoError(t, err)
	assert.Greater(t, out.Scoring.OverallMatch, 0.0)
}

func TestWriteJSON_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeJSON(path, map[string]int{"score": 72}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 72, decoded["score"])
}
