// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoring outputs the four top-level scores with the technical breakdown.
func (p *Printer) PrintScoring(scoring *types.ScoringResult) {
	if scoring == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall match:     %6.2f\n", scoring.OverallMatch))
	sb.WriteString(fmt.Sprintf("Technical fit:     %6.2f\n", scoring.TechnicalFit))
	sb.WriteString(fmt.Sprintf("Experience fit:    %6.2f\n", scoring.ExperienceFit))
	sb.WriteString(fmt.Sprintf("ATS optimization:  %6.2f\n", scoring.ATSOptimization))
	sb.WriteString(fmt.Sprintf("Confidence:        %6.2f\n", scoring.ConfidenceScore))

	if len(scoring.Technical.MissingCriticalSkills) > 0 {
		sb.WriteString("\nMissing critical skills:\n")
		count := min(len(scoring.Technical.MissingCriticalSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", scoring.Technical.MissingCriticalSkills[i]))
		}
		if len(scoring.Technical.MissingCriticalSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(scoring.Technical.MissingCriticalSkills)-maxItemsToShow))
		}
	}

	p.printBox("MATCH SCORING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top recommendations with priorities.
func (p *Printer) PrintRecommendations(set *types.RecommendationSet) {
	if set == nil || len(set.Recommendations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status: %s\n", set.Status))
	sb.WriteString(fmt.Sprintf("%d recommendation(s), total impact %.1f%%\n\n", len(set.Recommendations), set.TotalImpactPercentage))

	count := min(len(set.Recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := set.Recommendations[i]
		title := rec.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", rec.Priority, title))
		sb.WriteString(fmt.Sprintf("    Impact: %.1f\n", rec.ImpactScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(set.Recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more recommendations", len(set.Recommendations)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintImpact outputs the missing-skill impact analysis.
func (p *Printer) PrintImpact(impact *types.ImpactAnalysis) {
	if impact == nil || impact.MissingSkillCount == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Missing skills:     %d\n", impact.MissingSkillCount))
	sb.WriteString(fmt.Sprintf("Current score:      %.2f\n", impact.CurrentScore))
	sb.WriteString(fmt.Sprintf("Potential score:    %.2f\n", impact.PotentialScore))
	sb.WriteString(fmt.Sprintf("Diminishing factor: %.1f\n\n", impact.DiminishingFactor))

	all := impact.All()
	count := min(len(all), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s (+%.1f)\n", all[i].Skill, all[i].ScoreIncrease))
	}
	if len(all) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(all)-maxItemsToShow))
	}

	p.printBox("MISSING SKILL IMPACT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSoftSkills outputs detected soft skills with confidence.
func (p *Printer) PrintSoftSkills(soft *types.SoftSkillResult) {
	if soft == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall confidence: %.1f\n", soft.Confidence))

	if len(soft.MatchedSkills) > 0 {
		sb.WriteString("\nDetected:\n")
		count := min(len(soft.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			match := soft.MatchedSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.0f)\n", match.Category, match.Confidence))
		}
		if len(soft.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(soft.MatchedSkills)-maxItemsToShow))
		}
	}
	if len(soft.MissingSkills) > 0 {
		names := make([]string, 0, len(soft.MissingSkills))
		for _, cat := range soft.MissingSkills {
			names = append(names, string(cat))
		}
		missing := strings.Join(names, ", ")
		if len(missing) > 45 {
			missing = missing[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nNo evidence: %s\n", missing))
	}

	p.printBox("SOFT SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrend outputs the score trend over stored history.
func (p *Printer) PrintTrend(trend *types.ScoreTrend) {
	if trend == nil || trend.DataPoints == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Direction:   %s (%s confidence)\n", trend.Direction, trend.Confidence))
	sb.WriteString(fmt.Sprintf("Data points: %d\n", trend.DataPoints))
	sb.WriteString(fmt.Sprintf("Scores:      %.1f → %.1f (avg %.1f)\n", trend.FirstScore, trend.LastScore, trend.AverageScore))
	sb.WriteString(fmt.Sprintf("Variation:   %.2f", trend.Variation))

	p.printBox("SCORE TREND", sb.String())
}

// PrintValidation outputs consistency issues found after the run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(validation *types.ValidationResult) {
	if validation == nil {
		return
	}
	if len(validation.Issues) == 0 && len(validation.Warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL CONSISTENCY CHECKS PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Consistency score: %.0f\n\n", validation.Score))

	for _, issue := range validation.Issues {
		message := issue.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", issue.Check, issue.Severity))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
	}
	for _, warning := range validation.Warnings {
		if len(warning) > 50 {
			warning = warning[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", warning))
	}

	p.printBox("CONSISTENCY CHECKS", strings.TrimSuffix(sb.String(), "\n"))
}
