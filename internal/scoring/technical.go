// Package scoring computes the component fit scores and combines them into a
// single overall match score with per-component breakdowns.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Tier weights for the technical blend. Core skills count double preferred
// skills; the bonus tier fills the remainder.
const (
	coreTierWeight      = 0.5
	preferredTierWeight = 0.25
	bonusTierWeight     = 0.25

	// criticalPenaltyPoints is the maximum deduction for missing every
	// critical skill the job requires.
	criticalPenaltyPoints = 20.0
)

// Technical computes the technical fit score from the resume and job skill
// lists. Job skills are split into core, preferred, and bonus tiers; each
// tier's match ratio defaults to 100 when the tier has no required skills.
func Technical(tab *taxonomy.Table, resumeSkills, jobSkills []string) types.TechnicalBreakdown {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, raw := range resumeSkills {
		canonical := tab.Normalize(raw)
		if canonical == "" {
			continue
		}
		resumeSet[strings.ToLower(canonical)] = true
	}

	var coreTotal, coreMatched int
	var preferredTotal, preferredMatched int
	var bonusTotal, bonusMatched int

	matched := make([]string, 0, len(jobSkills))
	missingCritical := make([]string, 0)
	missingPreferred := make([]string, 0)

	seen := make(map[string]bool, len(jobSkills))
	for _, raw := range jobSkills {
		skill := tab.Categorize(raw)
		if skill.Name == "" {
			continue
		}
		key := strings.ToLower(skill.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		has := resumeSet[key]
		if has {
			matched = append(matched, skill.Name)
		}

		switch {
		case skill.Category == types.CategoryCoreTechnical:
			coreTotal++
			if has {
				coreMatched++
			} else {
				missingCritical = append(missingCritical, skill.Name)
			}
		case skill.Category.IsPreferred():
			preferredTotal++
			if has {
				preferredMatched++
			} else {
				missingPreferred = append(missingPreferred, skill.Name)
			}
		default:
			bonusTotal++
			if has {
				bonusMatched++
			}
		}
	}

	coreMatch := tierRatio(coreMatched, coreTotal)
	preferredMatch := tierRatio(preferredMatched, preferredTotal)
	bonusMatch := tierRatio(bonusMatched, bonusTotal)

	score := coreMatch*coreTierWeight + preferredMatch*preferredTierWeight + bonusMatch*bonusTierWeight

	penalty := 0.0
	if coreTotal > 0 {
		penalty = float64(len(missingCritical)) / float64(coreTotal) * criticalPenaltyPoints
	}
	score = clampScore(score - penalty)

	return types.TechnicalBreakdown{
		Score:                  score,
		CoreMatch:              coreMatch,
		PreferredMatch:         preferredMatch,
		BonusMatch:             bonusMatch,
		MatchedSkills:          matched,
		MissingCriticalSkills:  missingCritical,
		MissingPreferredSkills: missingPreferred,
		CriticalPenalty:        penalty,
	}
}

// tierRatio returns the percentage of a tier's skills that matched. A tier
// with nothing required scores as fully satisfied.
func tierRatio(matched, total int) float64 {
	if total == 0 {
		return 100.0
	}
	return float64(matched) / float64(total) * 100.0
}

// clampScore bounds a score to [0,100].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
