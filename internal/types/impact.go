package types

// MissingSkillImpact estimates the score increase obtainable by adding one
// missing skill to the resume.
type MissingSkillImpact struct {
	Skill         string        `json:"skill"`
	Category      SkillCategory `json:"category"`
	Priority      SkillPriority `json:"priority"`
	ScoreIncrease float64       `json:"score_increase"`
	Weight        float64       `json:"weight"`
}

// ImpactAnalysis buckets missing skills by the size of their individual
// increase and reports the total obtainable improvement after the
// diminishing-returns adjustment.
type ImpactAnalysis struct {
	CriticalImpact []MissingSkillImpact `json:"critical_impact"`
	HighImpact     []MissingSkillImpact `json:"high_impact"`
	MediumImpact   []MissingSkillImpact `json:"medium_impact"`
	LowImpact      []MissingSkillImpact `json:"low_impact"`

	MissingSkillCount      int     `json:"missing_skill_count"`
	DiminishingFactor      float64 `json:"diminishing_factor"`
	TotalPotentialIncrease float64 `json:"total_potential_increase"`
	CurrentScore           float64 `json:"current_score"`
	PotentialScore         float64 `json:"potential_score"`
}

// All returns every missing-skill impact across the four buckets, highest
// bucket first.
func (ia *ImpactAnalysis) All() []MissingSkillImpact {
	out := make([]MissingSkillImpact, 0,
		len(ia.CriticalImpact)+len(ia.HighImpact)+len(ia.MediumImpact)+len(ia.LowImpact))
	out = append(out, ia.CriticalImpact...)
	out = append(out, ia.HighImpact...)
	out = append(out, ia.MediumImpact...)
	out = append(out, ia.LowImpact...)
	return out
}
