package types

// MatchStatus summarizes how strong an overall match is.
type MatchStatus string

// Match statuses, derived from the overall match score alone.
const (
	StatusExcellent MatchStatus = "excellent_match"
	StatusStrong    MatchStatus = "strong_match_minor_improvements"
	StatusModerate  MatchStatus = "moderate_match_improvements_needed"
	StatusLow       MatchStatus = "low_match_significant_gaps"
)

// Match status thresholds on the overall match score.
const (
	ExcellentThreshold = 85.0
	StrongThreshold    = 70.0
	ModerateThreshold  = 50.0
)

// MatchStatusFor derives the match status from an overall match score.
// It is a pure function; the consistency validator re-derives the status
// through the same path to detect drift.
func MatchStatusFor(overallMatch float64) MatchStatus {
	switch {
	case overallMatch >= ExcellentThreshold:
		return StatusExcellent
	case overallMatch >= StrongThreshold:
		return StatusStrong
	case overallMatch >= ModerateThreshold:
		return StatusModerate
	default:
		return StatusLow
	}
}

// RecommendationType identifies which scoring signal produced a recommendation.
type RecommendationType string

// Recommendation types.
const (
	RecMissingCriticalSkill  RecommendationType = "missing_critical_skill"
	RecMissingPreferredSkill RecommendationType = "missing_preferred_skill"
	RecExperienceGap         RecommendationType = "experience_gap"
	RecATSKeywords           RecommendationType = "ats_keywords"
	RecATSFormatting         RecommendationType = "ats_formatting"
	RecATSSections           RecommendationType = "ats_sections"
	RecSoftSkills            RecommendationType = "soft_skills"
)

// RecPriority orders recommendations for presentation.
type RecPriority string

// Recommendation priorities, highest first.
const (
	RecPriorityCritical RecPriority = "critical"
	RecPriorityHigh     RecPriority = "high"
	RecPriorityMedium   RecPriority = "medium"
	RecPriorityLow      RecPriority = "low"
)

// Rank returns a numeric rank for sorting; higher sorts first.
func (p RecPriority) Rank() int {
	switch p {
	case RecPriorityCritical:
		return 4
	case RecPriorityHigh:
		return 3
	case RecPriorityMedium:
		return 2
	case RecPriorityLow:
		return 1
	default:
		return 0
	}
}

// ImpactWeight returns the weight a priority contributes to the total impact
// percentage.
func (p RecPriority) ImpactWeight() float64 {
	switch p {
	case RecPriorityCritical:
		return 1.0
	case RecPriorityHigh:
		return 0.8
	case RecPriorityMedium:
		return 0.6
	default:
		return 0.4
	}
}

// Recommendation is a single generated improvement suggestion. Recommendations
// are never hand-authored; ordering is deterministic (priority descending,
// then impact score descending).
type Recommendation struct {
	ID          string             `json:"id"`
	Type        RecommendationType `json:"type"`
	Priority    RecPriority        `json:"priority"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Action      string             `json:"action"`
	ImpactScore float64            `json:"impact_score"`
	Category    SkillCategory      `json:"category,omitempty"`
}

// RecommendationSet is the full recommendation output for one analysis.
// The per-priority counts are derived from the recommendation slice and must
// always equal the number of recommendations carrying that priority.
type RecommendationSet struct {
	Status                MatchStatus      `json:"status"`
	Recommendations       []Recommendation `json:"recommendations"`
	CriticalCount         int              `json:"critical_count"`
	HighPriorityCount     int              `json:"high_priority_count"`
	MediumCount           int              `json:"medium_count"`
	LowCount              int              `json:"low_count"`
	TotalImpactPercentage float64          `json:"total_impact_percentage"`
	Summary               string           `json:"summary"`
}

// CountFor returns the derived count for a given priority.
func (rs *RecommendationSet) CountFor(p RecPriority) int {
	switch p {
	case RecPriorityCritical:
		return rs.CriticalCount
	case RecPriorityHigh:
		return rs.HighPriorityCount
	case RecPriorityMedium:
		return rs.MediumCount
	default:
		return rs.LowCount
	}
}
