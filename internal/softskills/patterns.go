// Package softskills infers soft skills from free resume text using
// deterministic term and pattern matching with confidence scoring.
package softskills

import (
	"regexp"

	"github.com/jonathan/resume-matcher/internal/types"
)

// category bundles the detection vocabulary for one soft-skill family.
type category struct {
	name     types.SoftSkillCategory
	weight   float64
	terms    []string
	patterns []*regexp.Regexp
}

// categories enumerates the eight fixed soft-skill families. Terms are
// matched case-insensitively as literal substrings; patterns capture phrasing
// that implies the skill without naming it.
var categories = []category{
	{
		name:   types.SoftSkillCommunication,
		weight: 1.0,
		terms:  []string{"communication", "public speaking", "presentation skills", "technical writing"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)presented\s+(to|at)`),
			regexp.MustCompile(`(?i)wrote\s+(documentation|reports|proposals)`),
			regexp.MustCompile(`(?i)communicated\s+with`),
		},
	},
	{
		name:   types.SoftSkillLeadership,
		weight: 1.0,
		terms:  []string{"leadership", "team lead", "mentoring", "mentorship"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)led\s+(a\s+)?team`),
			regexp.MustCompile(`(?i)managed\s+\d+\s+(people|engineers|developers|reports)`),
			regexp.MustCompile(`(?i)mentored\s+\w+`),
		},
	},
	{
		name:   types.SoftSkillTeamwork,
		weight: 0.95,
		terms:  []string{"teamwork", "team player", "collaboration"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)collaborated\s+with`),
			regexp.MustCompile(`(?i)cross[- ]functional`),
			regexp.MustCompile(`(?i)worked\s+(closely\s+)?with\s+(the\s+)?\w+\s+team`),
		},
	},
	{
		name:   types.SoftSkillProblemSolving,
		weight: 1.0,
		terms:  []string{"problem solving", "problem-solving", "troubleshooting"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(solved|resolved|debugged)\s+\w+`),
			regexp.MustCompile(`(?i)root\s+cause`),
			regexp.MustCompile(`(?i)diagnosed\s+\w+`),
		},
	},
	{
		name:   types.SoftSkillAdaptability,
		weight: 0.9,
		terms:  []string{"adaptability", "adaptable", "flexible", "quick learner"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)adapted\s+to`),
			regexp.MustCompile(`(?i)fast[- ]paced`),
			regexp.MustCompile(`(?i)learned\s+\w+\s+quickly`),
		},
	},
	{
		name:   types.SoftSkillCreativity,
		weight: 0.9,
		terms:  []string{"creativity", "creative", "innovation", "innovative"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)designed\s+(a\s+)?(new|novel)`),
			regexp.MustCompile(`(?i)from\s+scratch`),
			regexp.MustCompile(`(?i)invented\s+\w+`),
		},
	},
	{
		name:   types.SoftSkillTimeManagement,
		weight: 0.95,
		terms:  []string{"time management", "prioritization", "multitasking"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(met|under|against)\s+(tight\s+)?deadlines?`),
			regexp.MustCompile(`(?i)prioritized\s+\w+`),
			regexp.MustCompile(`(?i)on\s+time\s+and\s+(under|within)\s+budget`),
		},
	},
	{
		name:   types.SoftSkillCriticalThinking,
		weight: 0.95,
		terms:  []string{"critical thinking", "analytical skills", "data-driven"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)analyzed\s+\w+`),
			regexp.MustCompile(`(?i)evaluated\s+(options|alternatives|trade[- ]?offs)`),
			regexp.MustCompile(`(?i)assessed\s+\w+`),
		},
	},
}

// Context cues inspected in the window around a match. Each group found adds
// a small confidence bonus.
var (
	experienceCues    = []string{"experience", "worked", "role", "position", "responsible"}
	actionVerbs       = []string{"led", "managed", "built", "delivered", "drove", "improved", "launched", "organized", "mentored", "designed"}
	quantifiedPattern = regexp.MustCompile(`\d+(\.\d+)?\s*(%|percent|x\b)`)
)
