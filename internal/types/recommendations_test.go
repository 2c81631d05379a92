package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		overall  float64
		expected MatchStatus
	}{
		{"excellent at threshold", 85, StatusExcellent},
		{"excellent above threshold", 92.5, StatusExcellent},
		{"strong just below excellent", 84.9, StatusStrong},
		{"strong at threshold", 70, StatusStrong},
		{"moderate at threshold", 50, StatusModerate},
		{"low below moderate", 49.9, StatusLow},
		{"low at zero", 0, StatusLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchStatusFor(tt.overall))
		})
	}
}

func TestRecPriority_Rank(t *testing.T) {
	assert.Greater(t, RecPriorityCritical.Rank(), RecPriorityHigh.Rank())
	assert.Greater(t, RecPriorityHigh.Rank(), RecPriorityMedium.Rank())
	assert.Greater(t, RecPriorityMedium.Rank(), RecPriorityLow.Rank())
}

func TestRecommendationSet_CountFor(t *testing.T) {
	set := RecommendationSet{
		CriticalCount:     2,
		HighPriorityCount: 3,
		MediumCount:       1,
		LowCount:          4,
	}

	assert.Equal(t, 2, set.CountFor(RecPriorityCritical))
	assert.Equal(t, 3, set.CountFor(RecPriorityHigh))
	assert.Equal(t, 1, set.CountFor(RecPriorityMedium))
	assert.Equal(t, 4, set.CountFor(RecPriorityLow))
}
