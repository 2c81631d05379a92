package types

// SoftSkillCategory is one of the fixed soft-skill families the detector
// looks for in free text.
type SoftSkillCategory string

// Soft-skill categories. The set is fixed; the detector carries a term list
// and patterns for each.
const (
	SoftSkillCommunication    SoftSkillCategory = "communication"
	SoftSkillLeadership       SoftSkillCategory = "leadership"
	SoftSkillTeamwork         SoftSkillCategory = "teamwork"
	SoftSkillProblemSolving   SoftSkillCategory = "problem_solving"
	SoftSkillAdaptability     SoftSkillCategory = "adaptability"
	SoftSkillCreativity       SoftSkillCategory = "creativity"
	SoftSkillTimeManagement   SoftSkillCategory = "time_management"
	SoftSkillCriticalThinking SoftSkillCategory = "critical_thinking"
)

// AllSoftSkillCategories lists every soft-skill category in display order.
var AllSoftSkillCategories = []SoftSkillCategory{
	SoftSkillCommunication,
	SoftSkillLeadership,
	SoftSkillTeamwork,
	SoftSkillProblemSolving,
	SoftSkillAdaptability,
	SoftSkillCreativity,
	SoftSkillTimeManagement,
	SoftSkillCriticalThinking,
}

// SoftSkillMatch is a single soft-skill detection in free text.
type SoftSkillMatch struct {
	Skill       string            `json:"skill"`
	Confidence  float64           `json:"confidence"`
	MatchedText string            `json:"matched_text"`
	Category    SoftSkillCategory `json:"category"`
	Position    int               `json:"position"`
}

// SoftSkillResult is the full soft-skill detection output: surviving matches,
// an overall confidence, and the categories with no surviving match.
type SoftSkillResult struct {
	MatchedSkills []SoftSkillMatch    `json:"matched_skills"`
	Confidence    float64             `json:"confidence"`
	MissingSkills []SoftSkillCategory `json:"missing_skills"`
}
