// Package impact estimates how much the overall match score could improve by
// adding each missing skill, with diminishing returns as gaps accumulate.
package impact

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Impact model constants.
const (
	minIncrease = 2.0
	maxIncrease = 25.0

	// totalIncreaseCap bounds the summed improvement potential regardless of
	// how many skills are missing.
	totalIncreaseCap = 40.0

	// weightNormalizer is the largest possible categoryWeight × priority
	// multiplier product, so normalized weights never exceed 1.
	weightNormalizer = 3.0 * 1.2

	increaseScale = 0.15

	// Individual-increase thresholds for bucketing.
	criticalBucketMin = 15.0
	highBucketMin     = 10.0
	mediumBucketMin   = 5.0
)

// categoryWeights grade how much a category contributes to match quality.
var categoryWeights = map[types.SkillCategory]float64{
	types.CategoryCoreTechnical: 3.0,
	types.CategoryBackend:       2.5,
	types.CategoryFrontend:      2.5,
	types.CategoryDatabase:      2.5,
	types.CategoryDevOps:        2.5,
	types.CategoryAIML:          2.5,
	types.CategorySoftSkills:    1.5,
	types.CategoryBonusSkills:   1.0,
}

// Calculate estimates the score increase obtainable for every job skill
// absent from the resume. The summed potential shrinks by a
// diminishing-returns factor keyed to how many skills are missing and is
// hard-capped; the resulting potential score never exceeds 100.
func Calculate(tab *taxonomy.Table, resumeSkills, jobSkills []string, currentScore float64) types.ImpactAnalysis {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, raw := range resumeSkills {
		canonical := tab.Normalize(raw)
		if canonical != "" {
			resumeSet[strings.ToLower(canonical)] = true
		}
	}

	seen := make(map[string]bool, len(jobSkills))
	missing := make([]types.MissingSkillImpact, 0, len(jobSkills))
	totalJobSkills := 0
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
		totalJobSkills++
		if resumeSet[key] {
			continue
		}
		weight := SkillWeight(skill)
		missing = append(missing, types.MissingSkillImpact{
			Skill:    skill.Name,
			Category: skill.Category,
			Priority: skill.Priority,
			Weight:   weight,
		})
	}

	analysis := types.ImpactAnalysis{
		CriticalImpact:    []types.MissingSkillImpact{},
		HighImpact:        []types.MissingSkillImpact{},
		MediumImpact:      []types.MissingSkillImpact{},
		LowImpact:         []types.MissingSkillImpact{},
		MissingSkillCount: len(missing),
		DiminishingFactor: diminishingFactor(len(missing)),
		CurrentScore:      currentScore,
		PotentialScore:    currentScore,
	}
	if len(missing) == 0 || totalJobSkills == 0 {
		return analysis
	}

	sum := 0.0
	for i := range missing {
		increase := 100.0 / float64(totalJobSkills) * missing[i].Weight * 100.0 * increaseScale
		if increase < minIncrease {
			increase = minIncrease
		}
		if increase > maxIncrease {
			increase = maxIncrease
		}
		missing[i].ScoreIncrease = increase
		sum += increase
	}

	total := sum * analysis.DiminishingFactor
	if total > totalIncreaseCap {
		total = totalIncreaseCap
	}
	analysis.TotalPotentialIncrease = total

	potential := currentScore + total
	if potential > 100 {
		potential = 100
	}
	analysis.PotentialScore = potential

	for _, m := range missing {
		switch {
		case m.ScoreIncrease >= criticalBucketMin:
			analysis.CriticalImpact = append(analysis.CriticalImpact, m)
		case m.ScoreIncrease >= highBucketMin:
			analysis.HighImpact = append(analysis.HighImpact, m)
		case m.ScoreIncrease >= mediumBucketMin:
			analysis.MediumImpact = append(analysis.MediumImpact, m)
		default:
			analysis.LowImpact = append(analysis.LowImpact, m)
		}
	}
	sortBucket(analysis.CriticalImpact)
	sortBucket(analysis.HighImpact)
	sortBucket(analysis.MediumImpact)
	sortBucket(analysis.LowImpact)

	return analysis
}

// SkillWeight normalizes a skill's categoryWeight × priority multiplier
// product to at most 1. The recommendation generator shares this weighting
// so impact scores and recommendations cannot drift apart.
func SkillWeight(skill types.CategorizedSkill) float64 {
	catWeight, ok := categoryWeights[skill.Category]
	if !ok {
		catWeight = 1.0
	}
	weight := catWeight * skill.Priority.Multiplier() / weightNormalizer
	if weight > 1 {
		weight = 1
	}
	return weight
}

// diminishingFactor shrinks the total obtainable improvement as the number
// of missing skills grows.
func diminishingFactor(missingCount int) float64 {
	switch {
	case missingCount <= 3:
		return 1.0
	case missingCount <= 6:
		return 0.8
	case missingCount <= 10:
		return 0.6
	case missingCount <= 15:
		return 0.4
	default:
		return 0.3
	}
}

// sortBucket orders a bucket by score increase descending, breaking ties by
// name so output stays deterministic.
func sortBucket(bucket []types.MissingSkillImpact) {
	sort.Slice(bucket, func(i, j int) bool {
		if bucket[i].ScoreIncrease != bucket[j].ScoreIncrease {
			return bucket[i].ScoreIncrease > bucket[j].ScoreIncrease
		}
		return bucket[i].Skill < bucket[j].Skill
	})
}
