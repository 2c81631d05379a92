package softskills

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Base confidences and thresholds for soft-skill detection.
const (
	termBaseConfidence    = 70.0
	patternBaseConfidence = 50.0

	termMinConfidence    = 30.0
	patternMinConfidence = 25.0

	longMatchBoost     = 5.0
	compoundBoost      = 5.0
	contextCueBoost    = 5.0
	longMatchThreshold = 15

	// contextWindow is how many characters around a match are inspected for
	// experience cues, action verbs, and quantified results.
	contextWindow = 50

	multiSkillBonusPerSkill = 5.0
	multiSkillBonusCap      = 20.0
	shortTextPenalty        = 20.0
	shortTextThreshold      = 100
)

// candidate is an internal match before per-category deduplication.
type candidate struct {
	match      types.SoftSkillMatch
	minAllowed float64
}

// Detect scans free text for evidence of the eight soft-skill categories.
// Detection is purely deterministic: exact terms, regular-expression
// patterns, and context inspection around each match. Empty text yields no
// matches, zero confidence, and all categories missing.
func Detect(text string) types.SoftSkillResult {
	result := types.SoftSkillResult{
		MatchedSkills: []types.SoftSkillMatch{},
		MissingSkills: []types.SoftSkillCategory{},
	}
	if text == "" {
		result.MissingSkills = append(result.MissingSkills, types.AllSoftSkillCategories...)
		return result
	}

	// All searching, slicing, and offsets work on the lowered text. Lowering
	// can change byte lengths for some Unicode characters, so offsets into it
	// must never be applied to the original string.
	lowerText := strings.ToLower(text)
	matchedByCategory := make(map[types.SoftSkillCategory]types.SoftSkillMatch, len(categories))

	for _, cat := range categories {
		best, found := bestMatch(lowerText, cat)
		if found {
			matchedByCategory[cat.name] = best
		}
	}

	total := 0.0
	for _, cat := range types.AllSoftSkillCategories {
		if match, ok := matchedByCategory[cat]; ok {
			result.MatchedSkills = append(result.MatchedSkills, match)
			total += match.Confidence
		} else {
			result.MissingSkills = append(result.MissingSkills, cat)
		}
	}

	if len(result.MatchedSkills) == 0 {
		return result
	}

	confidence := total / float64(len(result.MatchedSkills))
	bonus := float64(len(result.MatchedSkills)-1) * multiSkillBonusPerSkill
	if bonus > multiSkillBonusCap {
		bonus = multiSkillBonusCap
	}
	confidence += bonus
	if len(text) < shortTextThreshold {
		confidence -= shortTextPenalty
	}
	result.Confidence = clamp(confidence, 0, 100)
	return result
}

// bestMatch finds the highest-confidence surviving match for one category.
// Duplicate matches within a category collapse to the strongest one. Matched
// text and positions refer to the lowered text.
func bestMatch(lowerText string, cat category) (types.SoftSkillMatch, bool) {
	var best candidate
	found := false

	consider := func(c candidate) {
		if c.match.Confidence < c.minAllowed {
			return
		}
		if !found || c.match.Confidence > best.match.Confidence {
			best = c
			found = true
		}
	}

	for _, term := range cat.terms {
		pos := strings.Index(lowerText, strings.ToLower(term))
		if pos < 0 {
			continue
		}
		matched := lowerText[pos : pos+len(term)]
		consider(candidate{
			match: types.SoftSkillMatch{
				Skill:       term,
				Confidence:  scoreMatch(termBaseConfidence, cat.weight, matched, lowerText, pos),
				MatchedText: matched,
				Category:    cat.name,
				Position:    pos,
			},
			minAllowed: termMinConfidence,
		})
	}

	for _, pattern := range cat.patterns {
		loc := pattern.FindStringIndex(lowerText)
		if loc == nil {
			continue
		}
		matched := lowerText[loc[0]:loc[1]]
		consider(candidate{
			match: types.SoftSkillMatch{
				Skill:       string(cat.name),
				Confidence:  scoreMatch(patternBaseConfidence, cat.weight, matched, lowerText, loc[0]),
				MatchedText: matched,
				Category:    cat.name,
				Position:    loc[0],
			},
			minAllowed: patternMinConfidence,
		})
	}

	return best.match, found
}

// scoreMatch computes a match's confidence: the base scaled by the category
// weight, boosted for long matches, compound phrases, and context cues in
// the surrounding window.
func scoreMatch(base, weight float64, matched, text string, pos int) float64 {
	confidence := base * weight
	if len(matched) > longMatchThreshold {
		confidence += longMatchBoost
	}
	if strings.Contains(strings.TrimSpace(matched), " ") {
		confidence += compoundBoost
	}
	confidence += contextBonus(text, pos, pos+len(matched))
	return clamp(confidence, 0, 100)
}

// contextBonus inspects the window around a match for experience-section
// cues, action verbs, and quantified results. The text and offsets come from
// the lowered string used for matching.
func contextBonus(text string, start, end int) float64 {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}
	window := text[from:to]

	bonus := 0.0
	for _, cue := range experienceCues {
		if strings.Contains(window, cue) {
			bonus += contextCueBoost
			break
		}
	}
	for _, verb := range actionVerbs {
		if strings.Contains(window, verb) {
			bonus += contextCueBoost
			break
		}
	}
	if quantifiedPattern.MatchString(window) {
		bonus += contextCueBoost
	}
	return bonus
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
