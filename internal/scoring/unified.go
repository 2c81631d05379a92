package scoring

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Confidence deductions for weak or missing input signals. Confidence scores
// data quality, not match quality.
const (
	emptySkillsDeduction       = 30.0
	missingResumeTextDeduction = 20.0
	shortResumeTextDeduction   = 10.0
	missingJobTextDeduction    = 10.0
	unspecifiedYearsDeduction  = 10.0

	shortTextThreshold = 100
)

// Unified combines the three component scores into the overall match score
// and computes the input-quality confidence score.
func Unified(tech types.TechnicalBreakdown, exp types.ExperienceBreakdown, ats types.ATSBreakdown, input *types.AnalysisInput) types.ScoringResult {
	overall := tech.Score*types.TechnicalWeight +
		exp.Score*types.ExperienceWeight +
		ats.Score*types.ATSWeight

	return types.ScoringResult{
		TechnicalFit:    round2(tech.Score),
		ExperienceFit:   round2(exp.Score),
		ATSOptimization: round2(ats.Score),
		OverallMatch:    round2(clampScore(overall)),
		ConfidenceScore: confidence(input),
		Technical:       tech,
		Experience:      exp,
		ATS:             ats,
	}
}

// confidence starts at 100 and deducts for each weak input signal.
func confidence(input *types.AnalysisInput) float64 {
	score := 100.0
	if len(input.ResumeSkills) == 0 {
		score -= emptySkillsDeduction
	}
	if len(input.JobSkills) == 0 {
		score -= emptySkillsDeduction
	}
	switch {
	case input.ResumeText == "":
		score -= missingResumeTextDeduction
	case len(input.ResumeText) < shortTextThreshold:
		score -= shortResumeTextDeduction
	}
	if input.JobText == "" {
		score -= missingJobTextDeduction
	}
	if input.ResumeYears == nil {
		score -= unspecifiedYearsDeduction
	}
	return clampScore(score)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
