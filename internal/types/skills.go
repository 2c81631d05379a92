// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

// SkillCategory identifies which part of a job's skill surface a skill belongs to.
type SkillCategory string

// Skill categories. The set is fixed; the taxonomy tables enumerate the members.
const (
	CategoryCoreTechnical SkillCategory = "core_technical"
	CategoryBackend       SkillCategory = "backend"
	CategoryFrontend      SkillCategory = "frontend"
	CategoryDatabase      SkillCategory = "database"
	CategoryDevOps        SkillCategory = "devops"
	CategoryAIML          SkillCategory = "ai_ml"
	CategorySoftSkills    SkillCategory = "soft_skills"
	CategoryBonusSkills   SkillCategory = "bonus_skills"
)

// AllSkillCategories lists every skill category in display order.
var AllSkillCategories = []SkillCategory{
	CategoryCoreTechnical,
	CategoryBackend,
	CategoryFrontend,
	CategoryDatabase,
	CategoryDevOps,
	CategoryAIML,
	CategorySoftSkills,
	CategoryBonusSkills,
}

// IsPreferred reports whether the category counts toward the preferred tier
// of the technical fit score (everything between core and bonus).
func (c SkillCategory) IsPreferred() bool {
	switch c {
	case CategoryBackend, CategoryFrontend, CategoryDatabase, CategoryDevOps, CategoryAIML:
		return true
	default:
		return false
	}
}

// SkillPriority expresses how strongly a job depends on a skill.
type SkillPriority string

// Skill priorities, ordered from most to least important.
const (
	PriorityCritical   SkillPriority = "critical"
	PriorityImportant  SkillPriority = "important"
	PriorityNiceToHave SkillPriority = "nice_to_have"
)

// Multiplier returns the scoring multiplier associated with a priority.
func (p SkillPriority) Multiplier() float64 {
	switch p {
	case PriorityCritical:
		return 1.2
	case PriorityImportant:
		return 1.0
	default:
		return 0.8
	}
}

// CategorizedSkill is a skill string resolved against the taxonomy.
// Immutable once created.
type CategorizedSkill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Priority SkillPriority `json:"priority"`
}
