package scoring

import "github.com/jonathan/resume-matcher/internal/types"

// Experience scores applied against required years of experience.
const (
	meetsRequirementBase = 90.0
	surplusCapYears      = 5.0

	noRequirementWithYears    = 90.0
	noRequirementWithoutYears = 80.0
)

// Experience computes the experience fit score. Nil years mean the value was
// not reported, which is distinct from zero. Absence of a requirement is not
// automatic full credit: the score settles at 90 (candidate reports
// experience) or 80 (none reported) to reflect genuine uncertainty.
func Experience(resumeYears, requiredYears *int) types.ExperienceBreakdown {
	breakdown := types.ExperienceBreakdown{
		YearsSpecified: resumeYears != nil,
	}
	if resumeYears != nil {
		breakdown.ResumeYears = *resumeYears
	}

	if requiredYears == nil {
		if resumeYears != nil && *resumeYears > 0 {
			breakdown.Score = noRequirementWithYears
		} else {
			breakdown.Score = noRequirementWithoutYears
		}
		breakdown.MeetsRequirement = true
		breakdown.GapPenalty = 100 - breakdown.Score
		return breakdown
	}

	breakdown.RequiredYears = *requiredYears
	have := breakdown.ResumeYears

	if have >= *requiredYears {
		// Score rises from 90 toward 100 as surplus approaches five years.
		surplus := float64(have - *requiredYears)
		if surplus > surplusCapYears {
			surplus = surplusCapYears
		}
		breakdown.Score = meetsRequirementBase + surplus/surplusCapYears*(100-meetsRequirementBase)
		breakdown.MeetsRequirement = true
		breakdown.GapPenalty = 100 - breakdown.Score
		return breakdown
	}

	gap := *requiredYears - have
	breakdown.GapYears = gap
	switch {
	case gap <= 1:
		breakdown.Score = 85
	case gap <= 3:
		breakdown.Score = 70
	case gap <= 5:
		breakdown.Score = 50
	default:
		breakdown.Score = 25
	}
	breakdown.GapPenalty = 100 - breakdown.Score
	return breakdown
}
