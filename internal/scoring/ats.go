package scoring

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ATS blend weights and density target.
const (
	alignmentWeight    = 0.5
	densityWeight      = 0.3
	completenessWeight = 0.2

	// idealMentionsPerSkill is the target number of times a skill should
	// appear in the resume text for full density credit.
	idealMentionsPerSkill = 3
	// densityFloor guarantees partial credit for any detectable mention.
	densityFloor = 20.0

	minKeywordLength = 3
)

// expectedSections are the section names the formatting heuristic looks for.
var expectedSections = []string{"experience", "education", "skills", "projects"}

// requiredSections drive the section completeness ratio.
var requiredSections = []string{"experience", "education", "skills"}

// stopWords are common words excluded from keyword extraction.
var stopWords = map[string]bool{
	"with": true, "that": true, "this": true, "from": true, "have": true,
	"will": true, "your": true, "about": true, "their": true, "other": true,
	"work": true, "team": true, "must": true, "able": true, "they": true,
	"them": true, "were": true, "been": true, "what": true, "when": true,
	"where": true, "which": true, "would": true, "should": true, "could": true,
	"years": true, "year": true, "more": true, "than": true, "such": true,
	"including": true, "required": true, "preferred": true, "strong": true,
}

// ATS computes the ATS optimization score from raw resume and job text plus
// the resume skill list. The final score blends keyword alignment, skill
// density, and section completeness; the formatting heuristic is reported in
// the breakdown and consumed by the recommendation generator.
func ATS(resumeText, jobText string, resumeSkills []string) types.ATSBreakdown {
	resumeKeywords := extractKeywords(resumeText)
	jobKeywords := extractKeywords(jobText)

	alignment, matchedKeywords := keywordAlignment(resumeKeywords, jobKeywords)
	density := skillDensity(resumeText, resumeSkills)
	formatting := formattingScore(resumeText)
	completeness, missingSections := sectionCompleteness(resumeText)

	score := clampScore(alignment*alignmentWeight + density*densityWeight + completeness*completenessWeight)

	return types.ATSBreakdown{
		Score:               score,
		KeywordAlignment:    alignment,
		SkillDensity:        density,
		Formatting:          formatting,
		SectionCompleteness: completeness,
		MatchedKeywords:     matchedKeywords,
		MissingSections:     missingSections,
	}
}

// extractKeywords tokenizes text into a set of lowercase words longer than
// three characters with stop words removed.
func extractKeywords(text string) map[string]bool {
	keywords := make(map[string]bool)
	if text == "" {
		return keywords
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		if len(word) <= minKeywordLength || stopWords[word] {
			continue
		}
		keywords[word] = true
	}
	return keywords
}

// keywordAlignment returns the percentage of job keywords also present in the
// resume, plus the sorted matched keywords. No job keywords means nothing to
// align against and scores as fully satisfied.
func keywordAlignment(resumeKeywords, jobKeywords map[string]bool) (float64, []string) {
	if len(jobKeywords) == 0 {
		return 100.0, []string{}
	}
	matched := make([]string, 0, len(jobKeywords))
	for keyword := range jobKeywords {
		if resumeKeywords[keyword] {
			matched = append(matched, keyword)
		}
	}
	sort.Strings(matched)
	return float64(len(matched)) / float64(len(jobKeywords)) * 100.0, matched
}

// skillDensity measures how often the resume's skill strings literally appear
// in the resume text, against an ideal of three mentions per skill.
func skillDensity(resumeText string, resumeSkills []string) float64 {
	if resumeText == "" || len(resumeSkills) == 0 {
		return 0
	}
	lowerText := strings.ToLower(resumeText)
	mentions := 0
	for _, skill := range resumeSkills {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle == "" {
			continue
		}
		mentions += strings.Count(lowerText, needle)
	}
	if mentions == 0 {
		return 0
	}
	ideal := idealMentionsPerSkill * len(resumeSkills)
	density := float64(mentions) / float64(ideal) * 100.0
	if density > 100 {
		density = 100
	}
	if density < densityFloor {
		density = densityFloor
	}
	return density
}

// formattingScore applies the formatting heuristic: a base of 50 plus bonuses
// for expected section names, bullet markers, and a reasonable word count.
func formattingScore(resumeText string) float64 {
	if resumeText == "" {
		return 0
	}
	lowerText := strings.ToLower(resumeText)
	score := 50.0
	for _, section := range expectedSections {
		if strings.Contains(lowerText, section) {
			score += 10
		}
	}
	if strings.ContainsAny(resumeText, "•◦▪") ||
		strings.Contains(resumeText, "- ") ||
		strings.Contains(resumeText, "* ") {
		score += 10
	}
	wordCount := len(strings.Fields(resumeText))
	if wordCount >= 100 && wordCount <= 1000 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

// sectionCompleteness returns the fraction of required section names present
// in the resume text and the names of the sections not found.
func sectionCompleteness(resumeText string) (float64, []string) {
	lowerText := strings.ToLower(resumeText)
	found := 0
	missing := make([]string, 0, len(requiredSections))
	for _, section := range requiredSections {
		if strings.Contains(lowerText, section) {
			found++
		} else {
			missing = append(missing, section)
		}
	}
	return float64(found) / float64(len(requiredSections)) * 100.0, missing
}
