package types

// Component weights for the overall match score. The consistency validator
// re-derives the overall score from these same constants.
const (
	TechnicalWeight  = 0.40
	ExperienceWeight = 0.30
	ATSWeight        = 0.30
)

// TechnicalBreakdown explains the technical fit score by skill tier.
type TechnicalBreakdown struct {
	Score                  float64  `json:"score"`
	CoreMatch              float64  `json:"core_match"`
	PreferredMatch         float64  `json:"preferred_match"`
	BonusMatch             float64  `json:"bonus_match"`
	MatchedSkills          []string `json:"matched_skills"`
	MissingCriticalSkills  []string `json:"missing_critical_skills"`
	MissingPreferredSkills []string `json:"missing_preferred_skills"`
	CriticalPenalty        float64  `json:"critical_penalty"`
}

// ExperienceBreakdown explains the experience fit score.
type ExperienceBreakdown struct {
	Score            float64 `json:"score"`
	ResumeYears      int     `json:"resume_years"`
	RequiredYears    int     `json:"required_years"`
	YearsSpecified   bool    `json:"years_specified"`
	MeetsRequirement bool    `json:"meets_requirement"`
	GapYears         int     `json:"gap_years"`
	GapPenalty       float64 `json:"gap_penalty"`
}

// ATSBreakdown explains the ATS optimization score.
type ATSBreakdown struct {
	Score               float64  `json:"score"`
	KeywordAlignment    float64  `json:"keyword_alignment"`
	SkillDensity        float64  `json:"skill_density"`
	Formatting          float64  `json:"formatting"`
	SectionCompleteness float64  `json:"section_completeness"`
	MatchedKeywords     []string `json:"matched_keywords"`
	MissingSections     []string `json:"missing_sections"`
}

// ScoringResult bundles the four top-level scores with their breakdowns.
// All scores are in [0,100]. OverallMatch is the weighted combination of the
// three component scores; ConfidenceScore measures input data quality, not
// match quality.
type ScoringResult struct {
	TechnicalFit    float64 `json:"technical_fit"`
	ExperienceFit   float64 `json:"experience_fit"`
	ATSOptimization float64 `json:"ats_optimization"`
	OverallMatch    float64 `json:"overall_match"`
	ConfidenceScore float64 `json:"confidence_score"`

	Technical  TechnicalBreakdown  `json:"technical"`
	Experience ExperienceBreakdown `json:"experience"`
	ATS        ATSBreakdown        `json:"ats"`
}
