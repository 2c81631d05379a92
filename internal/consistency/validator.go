// Package consistency cross-checks that independently computed analysis
// metrics do not contradict each other. Violations are returned as part of
// the result, never thrown; a critical issue invalidates the run but the
// analysis stays usable.
package consistency

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Consistency check tolerances and deductions.
const (
	// overallTolerance is how far the overall match score may drift from its
	// declared weighted formula.
	overallTolerance = 5.0

	// impactTotalCap and maxScore bound the impact calculator's outputs.
	impactTotalCap = 40.0
	maxScore       = 100.0

	criticalDeduction = 20.0
	highDeduction     = 20.0
	mediumDeduction   = 10.0
	lowDeduction      = 5.0
	warningDeduction  = 2.0

	// highScoreFloor and criticalRecLimit trigger the advisory check for a
	// high score paired with many critical recommendations.
	highScoreFloor   = 70.0
	criticalRecLimit = 3
)

// Validate runs every cross-component check over one analysis run. The
// impact and soft-skill arguments are nil for quick runs; their checks are
// skipped, not failed.
func Validate(scoring types.ScoringResult, recs types.RecommendationSet, impact *types.ImpactAnalysis, soft *types.SoftSkillResult) types.ValidationResult {
	result := types.ValidationResult{
		Issues:   []types.ValidationIssue{},
		Warnings: []string{},
	}

	checkScoreRanges(scoring, &result)
	checkOverallFormula(scoring, &result)
	checkStatus(scoring, recs, &result)
	checkRecommendationCounts(recs, &result)
	checkExcellentStatus(recs, &result)
	if impact != nil {
		checkImpactBounds(*impact, &result)
	}
	if soft != nil {
		checkSoftSkills(*soft, &result)
	}

	if scoring.OverallMatch >= highScoreFloor && recs.CriticalCount > criticalRecLimit {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("overall match %.1f is high yet %d critical recommendations were produced", scoring.OverallMatch, recs.CriticalCount))
	}

	result.Score = consistencyScore(result.Issues, len(result.Warnings))
	result.IsValid = true
	for _, issue := range result.Issues {
		if issue.Severity == types.IssueCritical {
			result.IsValid = false
			break
		}
	}
	result.Summary = summarize(result)
	return result
}

func checkScoreRanges(scoring types.ScoringResult, result *types.ValidationResult) {
	scores := []struct {
		name  string
		value float64
	}{
		{"technical fit", scoring.TechnicalFit},
		{"experience fit", scoring.ExperienceFit},
		{"ats optimization", scoring.ATSOptimization},
		{"overall match", scoring.OverallMatch},
		{"confidence", scoring.ConfidenceScore},
	}
	for _, score := range scores {
		if score.value < 0 || score.value > maxScore {
			result.Issues = append(result.Issues, types.ValidationIssue{
				Check:    "score_range",
				Severity: types.IssueHigh,
				Message:  fmt.Sprintf("%s score %.2f is outside [0,100]", score.name, score.value),
			})
		}
	}
}

func checkOverallFormula(scoring types.ScoringResult, result *types.ValidationResult) {
	expected := scoring.TechnicalFit*types.TechnicalWeight +
		scoring.ExperienceFit*types.ExperienceWeight +
		scoring.ATSOptimization*types.ATSWeight
	if math.Abs(scoring.OverallMatch-expected) > overallTolerance {
		result.Issues = append(result.Issues, types.ValidationIssue{
			Check:    "overall_formula",
			Severity: types.IssueHigh,
			Message:  fmt.Sprintf("overall match %.2f deviates from weighted combination %.2f by more than %.0f", scoring.OverallMatch, expected, overallTolerance),
		})
	}
}

func checkStatus(scoring types.ScoringResult, recs types.RecommendationSet, result *types.ValidationResult) {
	expected := types.MatchStatusFor(scoring.OverallMatch)
	if recs.Status != expected {
		result.Issues = append(result.Issues, types.ValidationIssue{
			Check:    "match_status",
			Severity: types.IssueHigh,
			Message:  fmt.Sprintf("recommendation status %q does not match %q derived from overall score %.2f", recs.Status, expected, scoring.OverallMatch),
		})
	}
}

func checkRecommendationCounts(recs types.RecommendationSet, result *types.ValidationResult) {
	counts := map[types.RecPriority]int{}
	for _, rec := range recs.Recommendations {
		counts[rec.Priority]++
	}
	declared := map[types.RecPriority]int{
		types.RecPriorityCritical: recs.CriticalCount,
		types.RecPriorityHigh:     recs.HighPriorityCount,
		types.RecPriorityMedium:   recs.MediumCount,
		types.RecPriorityLow:      recs.LowCount,
	}
	for priority, want := range declared {
		if counts[priority] != want {
			result.Issues = append(result.Issues, types.ValidationIssue{
				Check:    "recommendation_counts",
				Severity: types.IssueMedium,
				Message:  fmt.Sprintf("declared %s count %d does not match %d actual recommendations", priority, want, counts[priority]),
			})
		}
	}
}

// An excellent match carrying critical recommendations is a contradiction
// severe enough to invalidate the run.
func checkExcellentStatus(recs types.RecommendationSet, result *types.ValidationResult) {
	if recs.Status != types.StatusExcellent {
		return
	}
	for _, rec := range recs.Recommendations {
		if rec.Priority == types.RecPriorityCritical {
			result.Issues = append(result.Issues, types.ValidationIssue{
				Check:    "excellent_with_critical",
				Severity: types.IssueCritical,
				Message:  "excellent match status cannot coexist with critical recommendations",
			})
			return
		}
	}
}

func checkImpactBounds(impact types.ImpactAnalysis, result *types.ValidationResult) {
	if impact.TotalPotentialIncrease > impactTotalCap {
		result.Issues = append(result.Issues, types.ValidationIssue{
			Check:    "impact_bounds",
			Severity: types.IssueMedium,
			Message:  fmt.Sprintf("total potential increase %.2f exceeds cap %.0f", impact.TotalPotentialIncrease, impactTotalCap),
		})
	}
	if impact.PotentialScore > maxScore {
		result.Issues = append(result.Issues, types.ValidationIssue{
			Check:    "impact_bounds",
			Severity: types.IssueMedium,
			Message:  fmt.Sprintf("potential score %.2f exceeds 100", impact.PotentialScore),
		})
	}
}

func checkSoftSkills(soft types.SoftSkillResult, result *types.ValidationResult) {
	seen := map[types.SoftSkillCategory]bool{}
	for _, match := range soft.MatchedSkills {
		if seen[match.Category] {
			result.Issues = append(result.Issues, types.ValidationIssue{
				Check:    "soft_skills",
				Severity: types.IssueMedium,
				Message:  fmt.Sprintf("soft-skill category %q matched more than once", match.Category),
			})
		}
		seen[match.Category] = true
		if match.Confidence < 0 || match.Confidence > maxScore {
			result.Issues = append(result.Issues, types.ValidationIssue{
				Check:    "soft_skills",
				Severity: types.IssueLow,
				Message:  fmt.Sprintf("soft-skill match %q has confidence %.2f outside [0,100]", match.Skill, match.Confidence),
			})
		}
	}
	if soft.Confidence < 0 || soft.Confidence > maxScore {
		result.Issues = append(result.Issues, types.ValidationIssue{
			Check:    "soft_skills",
			Severity: types.IssueLow,
			Message:  fmt.Sprintf("overall soft-skill confidence %.2f outside [0,100]", soft.Confidence),
		})
	}
}

func consistencyScore(issues []types.ValidationIssue, warningCount int) float64 {
	score := maxScore
	for _, issue := range issues {
		switch issue.Severity {
		case types.IssueCritical:
			score -= criticalDeduction
		case types.IssueHigh:
			score -= highDeduction
		case types.IssueMedium:
			score -= mediumDeduction
		case types.IssueLow:
			score -= lowDeduction
		}
	}
	score -= warningDeduction * float64(warningCount)
	if score < 0 {
		score = 0
	}
	return score
}

func summarize(result types.ValidationResult) string {
	if len(result.Issues) == 0 && len(result.Warnings) == 0 {
		return "All consistency checks passed."
	}
	if !result.IsValid {
		return fmt.Sprintf("Validation failed: %d issue(s) found, at least one critical. Consistency score %.0f.", len(result.Issues), result.Score)
	}
	return fmt.Sprintf("Validation passed with %d issue(s) and %d warning(s). Consistency score %.0f.", len(result.Issues), len(result.Warnings), result.Score)
}
