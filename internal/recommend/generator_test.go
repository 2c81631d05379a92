package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

func scoringWith(overall float64) types.ScoringResult {
	return types.ScoringResult{
		OverallMatch: overall,
		Experience:   types.ExperienceBreakdown{MeetsRequirement: true},
		ATS: types.ATSBreakdown{
			KeywordAlignment:    90,
			Formatting:          90,
			SectionCompleteness: 100,
		},
	}
}

func TestGenerate_MissingCriticalSkillRecommendation(t *testing.T) {
	scoring := scoringWith(55)
	scoring.Technical.MissingCriticalSkills = []string{"Python"}

	set := Generate(taxonomy.Default(), scoring, nil)

	require.NotEmpty(t, set.Recommendations)
	rec := set.Recommendations[0]
	assert.Equal(t, types.RecMissingCriticalSkill, rec.Type)
	assert.Equal(t, types.RecPriorityCritical, rec.Priority)
	assert.Equal(t, "missing-critical-python", rec.ID)
	assert.Contains(t, rec.Title, "Python")
	assert.Equal(t, types.CategoryCoreTechnical, rec.Category)
}

func TestGenerate_MissingPreferredSkillIsHighPriority(t *testing.T) {
	scoring := scoringWith(65)
	scoring.Technical.MissingPreferredSkills = []string{"AWS"}

	set := Generate(taxonomy.Default(), scoring, nil)

	require.Len(t, set.Recommendations, 1)
	assert.Equal(t, types.RecPriorityHigh, set.Recommendations[0].Priority)
	assert.Equal(t, 1, set.HighPriorityCount)
}

func TestGenerate_ExperienceGapPriorityScalesWithGap(t *testing.T) {
	tests := []struct {
		name     string
		gap      int
		expected types.RecPriority
	}{
		{"small gap", 1, types.RecPriorityMedium},
		{"medium gap", 2, types.RecPriorityHigh},
		{"large gap", 4, types.RecPriorityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scoring := scoringWith(60)
			scoring.Experience = types.ExperienceBreakdown{
				MeetsRequirement: false,
				GapYears:         tt.gap,
				RequiredYears:    5,
				ResumeYears:      5 - tt.gap,
				GapPenalty:       30,
			}

			set := Generate(taxonomy.Default(), scoring, nil)

			require.Len(t, set.Recommendations, 1)
			assert.Equal(t, types.RecExperienceGap, set.Recommendations[0].Type)
			assert.Equal(t, tt.expected, set.Recommendations[0].Priority)
		})
	}
}

func TestGenerate_ExperienceGapWithUnreportedYears(t *testing.T) {
	scoring := scoringWith(50)
	scoring.Experience = types.ExperienceBreakdown{
		MeetsRequirement: false,
		YearsSpecified:   false,
		GapYears:         5,
		RequiredYears:    5,
		GapPenalty:       50,
	}

	set := Generate(taxonomy.Default(), scoring, nil)

	require.Len(t, set.Recommendations, 1)
	rec := set.Recommendations[0]
	assert.Equal(t, types.RecExperienceGap, rec.Type)
	assert.Contains(t, rec.Description, "does not state your years of experience")
	assert.NotContains(t, rec.Description, "reports 0")
}

func TestGenerate_NoGapRecommendationWhenRequirementMet(t *testing.T) {
	scoring := scoringWith(80)
	scoring.Experience = types.ExperienceBreakdown{MeetsRequirement: true, ResumeYears: 8, RequiredYears: 5}

	set := Generate(taxonomy.Default(), scoring, nil)

	for _, rec := range set.Recommendations {
		assert.NotEqual(t, types.RecExperienceGap, rec.Type)
	}
}

func TestGenerate_ATSRecommendations(t *testing.T) {
	scoring := scoringWith(45)
	scoring.ATS = types.ATSBreakdown{
		KeywordAlignment:    40,
		Formatting:          60,
		SectionCompleteness: 33.3,
		MissingSections:     []string{"education", "skills"},
	}

	set := Generate(taxonomy.Default(), scoring, nil)

	byType := make(map[types.RecommendationType]types.Recommendation)
	for _, rec := range set.Recommendations {
		byType[rec.Type] = rec
	}
	require.Contains(t, byType, types.RecATSKeywords)
	require.Contains(t, byType, types.RecATSFormatting)
	require.Contains(t, byType, types.RecATSSections)
	assert.Equal(t, types.RecPriorityHigh, byType[types.RecATSKeywords].Priority)
	assert.Equal(t, types.RecPriorityMedium, byType[types.RecATSFormatting].Priority)
	assert.Contains(t, byType[types.RecATSSections].Description, "education")
}

func TestGenerate_SoftSkillCueFeedsIn(t *testing.T) {
	scoring := scoringWith(75)
	soft := &types.SoftSkillResult{
		MissingSkills: []types.SoftSkillCategory{
			types.SoftSkillLeadership, types.SoftSkillTeamwork,
			types.SoftSkillCreativity, types.SoftSkillAdaptability,
			types.SoftSkillTimeManagement,
		},
	}

	set := Generate(taxonomy.Default(), scoring, soft)

	require.Len(t, set.Recommendations, 1)
	assert.Equal(t, types.RecSoftSkills, set.Recommendations[0].Type)
	assert.Equal(t, types.RecPriorityLow, set.Recommendations[0].Priority)
}

func TestGenerate_DeterministicOrdering(t *testing.T) {
	scoring := scoringWith(40)
	scoring.Technical.MissingCriticalSkills = []string{"Python", "Java"}
	scoring.Technical.MissingPreferredSkills = []string{"AWS"}
	scoring.ATS.KeywordAlignment = 30

	first := Generate(taxonomy.Default(), scoring, nil)
	second := Generate(taxonomy.Default(), scoring, nil)

	require.Equal(t, first, second)
	for i := 1; i < len(first.Recommendations); i++ {
		prev, cur := first.Recommendations[i-1], first.Recommendations[i]
		if prev.Priority.Rank() == cur.Priority.Rank() {
			assert.GreaterOrEqual(t, prev.ImpactScore, cur.ImpactScore)
		} else {
			assert.Greater(t, prev.Priority.Rank(), cur.Priority.Rank())
		}
	}
}

func TestGenerate_CountsMatchRecommendations(t *testing.T) {
	scoring := scoringWith(40)
	scoring.Technical.MissingCriticalSkills = []string{"Python"}
	scoring.Technical.MissingPreferredSkills = []string{"AWS", "React"}
	scoring.Experience = types.ExperienceBreakdown{GapYears: 2, RequiredYears: 5, ResumeYears: 3, GapPenalty: 30}
	scoring.ATS.Formatting = 50

	set := Generate(taxonomy.Default(), scoring, nil)

	sum := set.CriticalCount + set.HighPriorityCount + set.MediumCount + set.LowCount
	assert.Equal(t, len(set.Recommendations), sum)
}

func TestGenerate_StatusThresholds(t *testing.T) {
	assert.Equal(t, types.StatusExcellent, Generate(taxonomy.Default(), scoringWith(90), nil).Status)
	assert.Equal(t, types.StatusStrong, Generate(taxonomy.Default(), scoringWith(75), nil).Status)
	assert.Equal(t, types.StatusModerate, Generate(taxonomy.Default(), scoringWith(55), nil).Status)
	assert.Equal(t, types.StatusLow, Generate(taxonomy.Default(), scoringWith(40), nil).Status)
}

func TestGenerate_TotalImpactCapped(t *testing.T) {
	scoring := scoringWith(30)
	scoring.Technical.MissingCriticalSkills = []string{"Python", "Java", "Go", "Rust"}

	set := Generate(taxonomy.Default(), scoring, nil)

	assert.LessOrEqual(t, set.TotalImpactPercentage, 100.0)
	assert.Greater(t, set.TotalImpactPercentage, 0.0)
}

func TestGenerate_SummaryMentionsStatus(t *testing.T) {
	set := Generate(taxonomy.Default(), scoringWith(90), nil)
	assert.Contains(t, set.Summary, "Excellent match")

	low := scoringWith(30)
	low.Technical.MissingCriticalSkills = []string{"Python"}
	assert.Contains(t, Generate(taxonomy.Default(), low, nil).Summary, "Low match")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "node-js", slugify("Node.js"))
	assert.Equal(t, "c", slugify("C++"))
	assert.Equal(t, "machine-learning", slugify("Machine Learning"))
	assert.Equal(t, "skill", slugify("!!!"))
}
