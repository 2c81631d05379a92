package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{
		"database_url": "postgres://localhost/matcher",
		"trend_max_points": 5,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/matcher", cfg.DatabaseURL)
	assert.Equal(t, 5, cfg.TrendMaxPoints)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_NegativeTrendPoints(t *testing.T) {
	cfg := &Config{TrendMaxPoints: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingTaxonomyFile(t *testing.T) {
	cfg := &Config{TaxonomyPath: filepath.Join(t.TempDir(), "taxonomy.json")}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "taxonomy file not found")
}

func TestValidate_ExistingTaxonomyFile(t *testing.T) {
	path := writeTempConfig(t, `{}`)
	cfg := &Config{TaxonomyPath: path}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://explicit"}
	defaults := Config{
		DatabaseURL:    "postgres://default",
		TaxonomyPath:   "taxonomy.json",
		TrendMaxPoints: 7,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "postgres://explicit", merged.DatabaseURL)
	assert.Equal(t, "taxonomy.json", merged.TaxonomyPath)
	assert.Equal(t, 7, merged.TrendMaxPoints)
}
