// Package recommend turns scoring breakdowns into ranked, human-readable
// improvement recommendations with a summary status.
package recommend

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/impact"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ATS thresholds below which a recommendation is produced.
const (
	alignmentThreshold    = 70.0
	formattingThreshold   = 80.0
	completenessThreshold = 90.0
)

// softSkillGapThreshold is how many soft-skill categories must be absent from
// the resume text before the detector's cues produce a recommendation.
const softSkillGapThreshold = 4

// Generate builds the recommendation set for one analysis. The scoring
// breakdown is the single authority; the soft-skill result, when available,
// contributes one additional low-priority cue rather than acting as a
// parallel generator. Ordering is deterministic: priority descending, then
// impact score descending, then title.
func Generate(tab *taxonomy.Table, scoring types.ScoringResult, soft *types.SoftSkillResult) types.RecommendationSet {
	recs := make([]types.Recommendation, 0, 8)
	recs = append(recs, fromMissingCritical(tab, scoring.Technical)...)
	recs = append(recs, fromMissingPreferred(tab, scoring.Technical)...)
	recs = append(recs, fromExperienceGap(scoring.Experience)...)
	recs = append(recs, fromATS(scoring.ATS)...)
	recs = append(recs, fromSoftSkillCues(soft)...)

	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		if a.ImpactScore != b.ImpactScore {
			return a.ImpactScore > b.ImpactScore
		}
		return a.Title < b.Title
	})

	set := types.RecommendationSet{
		Status:          types.MatchStatusFor(scoring.OverallMatch),
		Recommendations: recs,
	}
	for _, rec := range recs {
		switch rec.Priority {
		case types.RecPriorityCritical:
			set.CriticalCount++
		case types.RecPriorityHigh:
			set.HighPriorityCount++
		case types.RecPriorityMedium:
			set.MediumCount++
		case types.RecPriorityLow:
			set.LowCount++
		}
	}
	set.TotalImpactPercentage = totalImpact(recs)
	set.Summary = summarize(set)
	return set
}

func fromMissingCritical(tab *taxonomy.Table, tech types.TechnicalBreakdown) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(tech.MissingCriticalSkills))
	for _, name := range tech.MissingCriticalSkills {
		skill := tab.Categorize(name)
		recs = append(recs, types.Recommendation{
			ID:          "missing-critical-" + slugify(name),
			Type:        types.RecMissingCriticalSkill,
			Priority:    types.RecPriorityCritical,
			Title:       fmt.Sprintf("Add missing critical skill: %s", name),
			Description: fmt.Sprintf("%s is a core technical requirement for this role and does not appear on your resume.", name),
			Action:      fmt.Sprintf("Gain demonstrable experience with %s and list it prominently in your skills section.", name),
			ImpactScore: impactFromWeight(skill),
			Category:    skill.Category,
		})
	}
	return recs
}

func fromMissingPreferred(tab *taxonomy.Table, tech types.TechnicalBreakdown) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(tech.MissingPreferredSkills))
	for _, name := range tech.MissingPreferredSkills {
		skill := tab.Categorize(name)
		recs = append(recs, types.Recommendation{
			ID:          "missing-preferred-" + slugify(name),
			Type:        types.RecMissingPreferredSkill,
			Priority:    types.RecPriorityHigh,
			Title:       fmt.Sprintf("Add preferred skill: %s", name),
			Description: fmt.Sprintf("%s is a preferred %s skill for this role that your resume does not mention.", name, strings.ReplaceAll(string(skill.Category), "_", " ")),
			Action:      fmt.Sprintf("Highlight any exposure to %s, or pick it up through a small project.", name),
			ImpactScore: impactFromWeight(skill),
			Category:    skill.Category,
		})
	}
	return recs
}

func fromExperienceGap(exp types.ExperienceBreakdown) []types.Recommendation {
	if exp.MeetsRequirement || exp.GapYears <= 0 {
		return nil
	}
	priority := types.RecPriorityMedium
	switch {
	case exp.GapYears > 3:
		priority = types.RecPriorityCritical
	case exp.GapYears > 1:
		priority = types.RecPriorityHigh
	}
	description := fmt.Sprintf("The role asks for %d years of experience; your resume reports %d.", exp.RequiredYears, exp.ResumeYears)
	if !exp.YearsSpecified {
		description = fmt.Sprintf("The role asks for %d years of experience; your resume does not state your years of experience.", exp.RequiredYears)
	}
	return []types.Recommendation{{
		ID:          "experience-gap",
		Type:        types.RecExperienceGap,
		Priority:    priority,
		Title:       fmt.Sprintf("Close a %d-year experience gap", exp.GapYears),
		Description: description,
		Action:      "Emphasize the depth and impact of your existing experience, and surface any relevant work not yet on the resume.",
		ImpactScore: exp.GapPenalty,
	}}
}

func fromATS(ats types.ATSBreakdown) []types.Recommendation {
	recs := make([]types.Recommendation, 0, 3)
	if ats.KeywordAlignment < alignmentThreshold {
		recs = append(recs, types.Recommendation{
			ID:          "ats-keyword-alignment",
			Type:        types.RecATSKeywords,
			Priority:    types.RecPriorityHigh,
			Title:       "Improve keyword alignment with the job description",
			Description: fmt.Sprintf("Only %.0f%% of the job posting's keywords appear in your resume, which hurts automated screening.", ats.KeywordAlignment),
			Action:      "Mirror the job description's terminology for the skills and responsibilities you genuinely have.",
			ImpactScore: 100 - ats.KeywordAlignment,
		})
	}
	if ats.Formatting < formattingThreshold {
		recs = append(recs, types.Recommendation{
			ID:          "ats-formatting",
			Type:        types.RecATSFormatting,
			Priority:    types.RecPriorityMedium,
			Title:       "Improve resume formatting for ATS parsing",
			Description: "The resume is missing formatting signals (section headers, bullet points, or a conventional length) that tracking systems rely on.",
			Action:      "Use standard section headings, bullet points for accomplishments, and keep the resume between 100 and 1000 words.",
			ImpactScore: 100 - ats.Formatting,
		})
	}
	if ats.SectionCompleteness < completenessThreshold {
		description := "The resume does not clearly include all expected sections."
		if len(ats.MissingSections) > 0 {
			description = fmt.Sprintf("Expected sections not found: %s.", strings.Join(ats.MissingSections, ", "))
		}
		recs = append(recs, types.Recommendation{
			ID:          "ats-sections",
			Type:        types.RecATSSections,
			Priority:    types.RecPriorityMedium,
			Title:       "Add the standard resume sections",
			Description: description,
			Action:      "Add clearly labeled experience, education, and skills sections.",
			ImpactScore: 100 - ats.SectionCompleteness,
		})
	}
	return recs
}

func fromSoftSkillCues(soft *types.SoftSkillResult) []types.Recommendation {
	if soft == nil || len(soft.MissingSkills) < softSkillGapThreshold {
		return nil
	}
	names := make([]string, 0, 3)
	for i, cat := range soft.MissingSkills {
		if i == 3 {
			break
		}
		names = append(names, strings.ReplaceAll(string(cat), "_", " "))
	}
	return []types.Recommendation{{
		ID:          "soft-skill-evidence",
		Type:        types.RecSoftSkills,
		Priority:    types.RecPriorityLow,
		Title:       "Show more evidence of soft skills",
		Description: fmt.Sprintf("Your resume text shows little evidence of %d soft-skill areas, including %s.", len(soft.MissingSkills), strings.Join(names, ", ")),
		Action:      "Work concrete examples of collaboration, leadership, and problem solving into your accomplishment bullets.",
		ImpactScore: 25,
		Category:    types.CategorySoftSkills,
	}}
}

// impactFromWeight converts a skill's impact-model weight into a 0-100
// impact score.
func impactFromWeight(skill types.CategorizedSkill) float64 {
	score := impact.SkillWeight(skill) * 100
	if score > 100 {
		score = 100
	}
	return score
}

// totalImpact is the priority-weighted average of individual impact scores.
func totalImpact(recs []types.Recommendation) float64 {
	if len(recs) == 0 {
		return 0
	}
	var weighted, weights float64
	for _, rec := range recs {
		w := rec.Priority.ImpactWeight()
		weighted += rec.ImpactScore * w
		weights += w
	}
	total := weighted / weights
	if total > 100 {
		total = 100
	}
	return total
}

// slugify lowercases a skill name into an id-safe token.
func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "skill"
	}
	return out
}
