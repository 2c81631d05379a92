package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func historyWithScores(scores ...float64) []types.AnalysisRecord {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	records := make([]types.AnalysisRecord, len(scores))
	for i, s := range scores {
		records[i] = types.AnalysisRecord{
			ResumeID:     "r1",
			JobID:        "j1",
			OverallMatch: s,
			Timestamp:    base.Add(time.Duration(i) * time.Hour),
		}
	}
	return records
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	trend := Analyze(nil, 0)

	assert.Equal(t, types.TrendStable, trend.Direction)
	assert.Equal(t, 0, trend.DataPoints)
	assert.Equal(t, types.TrendConfidenceLow, trend.Confidence)
	assert.Zero(t, trend.AverageScore)
}

func TestAnalyze_SingleRecordIsStable(t *testing.T) {
	trend := Analyze(historyWithScores(72), 0)

	assert.Equal(t, types.TrendStable, trend.Direction)
	assert.Equal(t, 1, trend.DataPoints)
	assert.Equal(t, 72.0, trend.FirstScore)
	assert.Equal(t, 72.0, trend.LastScore)
	assert.Equal(t, 72.0, trend.AverageScore)
	assert.Equal(t, types.TrendConfidenceLow, trend.Confidence)
}

func TestAnalyze_ImprovingDirection(t *testing.T) {
	trend := Analyze(historyWithScores(50, 55, 62, 68, 75), 0)

	assert.Equal(t, types.TrendImproving, trend.Direction)
	assert.Equal(t, 50.0, trend.FirstScore)
	assert.Equal(t, 75.0, trend.LastScore)
	assert.Equal(t, 62.0, trend.AverageScore)
	assert.InDelta(t, 6.25, trend.ImprovementRate, 0.01)
}

func TestAnalyze_DecliningDirection(t *testing.T) {
	trend := Analyze(historyWithScores(80, 72, 65), 0)

	assert.Equal(t, types.TrendDeclining, trend.Direction)
	assert.Negative(t, trend.ImprovementRate)
}

func TestAnalyze_SmallDeltaIsStable(t *testing.T) {
	trend := Analyze(historyWithScores(70, 68, 73), 0)

	assert.Equal(t, types.TrendStable, trend.Direction)
}

func TestAnalyze_UsesOnlyNewestMaxPoints(t *testing.T) {
	// Ten records, but only the last five feed the trend.
	trend := Analyze(historyWithScores(10, 10, 10, 10, 10, 70, 70, 70, 70, 70), 5)

	assert.Equal(t, 5, trend.DataPoints)
	assert.Equal(t, 70.0, trend.FirstScore)
	assert.Equal(t, 70.0, trend.AverageScore)
	assert.Equal(t, types.TrendStable, trend.Direction)
}

func TestAnalyze_ConfidenceGrading(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		expected types.TrendConfidence
	}{
		{"five steady points", []float64{60, 62, 64, 66, 68}, types.TrendConfidenceHigh},
		{"three moderate points", []float64{50, 60, 70}, types.TrendConfidenceMedium},
		{"two points only", []float64{50, 70}, types.TrendConfidenceLow},
		{"five erratic points", []float64{10, 90, 15, 85, 20}, types.TrendConfidenceLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := Analyze(historyWithScores(tt.scores...), 0)
			assert.Equal(t, tt.expected, trend.Confidence)
		})
	}
}

func TestAnalyze_VariationIsStandardDeviation(t *testing.T) {
	trend := Analyze(historyWithScores(50, 70), 0)

	assert.InDelta(t, 10.0, trend.Variation, 0.01)
}
