package trend

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Trend analysis constants.
const (
	// defaultMaxPoints is how many of the most recent records feed the trend
	// computation.
	defaultMaxPoints = 5

	// directionThreshold is the minimum first-to-last overall score delta
	// before a trend counts as improving or declining.
	directionThreshold = 5.0

	// Variation (standard deviation) and data-point bounds for confidence
	// grading.
	highConfidenceMinPoints   = 5
	highConfidenceMaxVar      = 15.0
	mediumConfidenceMinPoints = 3
	mediumConfidenceMaxVar    = 25.0
)

// Analyze computes trend statistics over stored analysis history, using at
// most maxPoints of the newest records (pass 0 for the default). History is
// expected oldest first, as Repository.Get returns it. With fewer than two
// records the trend is stable with whatever single data point exists.
func Analyze(history []types.AnalysisRecord, maxPoints int) types.ScoreTrend {
	if maxPoints <= 0 {
		maxPoints = defaultMaxPoints
	}
	if len(history) > maxPoints {
		history = history[len(history)-maxPoints:]
	}

	trend := types.ScoreTrend{
		Direction:  types.TrendStable,
		DataPoints: len(history),
		Confidence: types.TrendConfidenceLow,
	}
	if len(history) == 0 {
		return trend
	}

	scores := make([]float64, len(history))
	sum := 0.0
	for i, record := range history {
		scores[i] = record.OverallMatch
		sum += record.OverallMatch
	}
	trend.FirstScore = scores[0]
	trend.LastScore = scores[len(scores)-1]
	trend.AverageScore = round2(sum / float64(len(scores)))

	if len(scores) < 2 {
		return trend
	}

	delta := trend.LastScore - trend.FirstScore
	switch {
	case delta > directionThreshold:
		trend.Direction = types.TrendImproving
	case delta < -directionThreshold:
		trend.Direction = types.TrendDeclining
	}

	// Average change per step between consecutive analyses.
	trend.ImprovementRate = round2(delta / float64(len(scores)-1))
	trend.Variation = round2(stdDev(scores, sum/float64(len(scores))))

	switch {
	case len(scores) >= highConfidenceMinPoints && trend.Variation < highConfidenceMaxVar:
		trend.Confidence = types.TrendConfidenceHigh
	case len(scores) >= mediumConfidenceMinPoints && trend.Variation < mediumConfidenceMaxVar:
		trend.Confidence = types.TrendConfidenceMedium
	}

	return trend
}

func stdDev(scores []float64, mean float64) float64 {
	var sumSquares float64
	for _, s := range scores {
		diff := s - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(scores)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
