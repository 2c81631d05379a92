// Package analysis is the top-level entry point sequencing the full
// match-scoring pipeline: taxonomy normalization, the three component
// scorers, unified scoring, impact and soft-skill analysis, recommendation
// generation, trend recording, and consistency validation.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/consistency"
	"github.com/jonathan/resume-matcher/internal/impact"
	"github.com/jonathan/resume-matcher/internal/recommend"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/softskills"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/trend"
	"github.com/jonathan/resume-matcher/internal/types"
)

// shortTextWarningThreshold is the free-text length below which a pre-flight
// warning is recorded.
const shortTextWarningThreshold = 50

// InputError reports pre-flight validation failures that block an analysis.
type InputError struct {
	Errors []string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid analysis input: %s", strings.Join(e.Errors, "; "))
}

// Analyzer runs analyses against one taxonomy table and one history store.
type Analyzer struct {
	repo        trend.Repository
	tab         *taxonomy.Table
	trendPoints int
}

// New creates an Analyzer. A nil repo falls back to an in-memory history
// store and a nil table falls back to the built-in taxonomy. trendPoints
// bounds how many records feed trend analysis; pass 0 for the default.
func New(repo trend.Repository, tab *taxonomy.Table, trendPoints int) *Analyzer {
	if repo == nil {
		repo = trend.NewMemoryRepository()
	}
	if tab == nil {
		tab = taxonomy.Default()
	}
	return &Analyzer{repo: repo, tab: tab, trendPoints: trendPoints}
}

// Run executes the full pipeline. Invalid input is the only error path
// besides history-store failures; internal inconsistencies are reported in
// the output's Validation field, never as errors.
func (a *Analyzer) Run(ctx context.Context, input *types.AnalysisInput) (*types.AnalysisOutput, error) {
	preflight := ValidateInput(input)
	if !preflight.IsValid {
		return nil, &InputError{Errors: preflight.Errors}
	}

	started := time.Now()

	tech := scoring.Technical(a.tab, input.ResumeSkills, input.JobSkills)
	exp := scoring.Experience(input.ResumeYears, input.RequiredYears)
	ats := scoring.ATS(input.ResumeText, input.JobText, input.ResumeSkills)
	unified := scoring.Unified(tech, exp, ats, input)

	soft := softskills.Detect(input.ResumeText)
	imp := impact.Calculate(a.tab, input.ResumeSkills, input.JobSkills, unified.OverallMatch)
	recs := recommend.Generate(a.tab, unified, &soft)

	record := types.AnalysisRecord{
		ID:              uuid.New(),
		ResumeID:        input.ResumeID,
		JobID:           input.JobID,
		TechnicalFit:    unified.TechnicalFit,
		ExperienceFit:   unified.ExperienceFit,
		ATSOptimization: unified.ATSOptimization,
		OverallMatch:    unified.OverallMatch,
		Timestamp:       started,
		Version:         types.EngineVersion,
	}
	if err := a.repo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record analysis: %w", err)
	}
	history, err := a.repo.Get(ctx, input.ResumeID, input.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis history: %w", err)
	}
	scoreTrend := trend.Analyze(history, a.trendPoints)

	validation := consistency.Validate(unified, recs, &imp, &soft)
	validation.Warnings = append(validation.Warnings, preflight.Warnings...)

	return &types.AnalysisOutput{
		AnalysisID:       record.ID,
		ResumeID:         input.ResumeID,
		JobID:            input.JobID,
		Scoring:          unified,
		Recommendations:  recs,
		Impact:           imp,
		SoftSkills:       soft,
		Trend:            scoreTrend,
		Validation:       validation,
		Timestamp:        started,
		Version:          types.EngineVersion,
		ProcessingTimeMs: time.Since(started).Milliseconds(),
	}, nil
}

// RunQuick executes scoring and recommendations only, for interactive use.
// It skips impact calculation, soft-skill detection, and trend persistence,
// so identical input yields identical output.
func (a *Analyzer) RunQuick(input *types.AnalysisInput) (*types.QuickAnalysisOutput, error) {
	preflight := ValidateInput(input)
	if !preflight.IsValid {
		return nil, &InputError{Errors: preflight.Errors}
	}

	tech := scoring.Technical(a.tab, input.ResumeSkills, input.JobSkills)
	exp := scoring.Experience(input.ResumeYears, input.RequiredYears)
	ats := scoring.ATS(input.ResumeText, input.JobText, input.ResumeSkills)
	unified := scoring.Unified(tech, exp, ats, input)
	recs := recommend.Generate(a.tab, unified, nil)

	validation := consistency.Validate(unified, recs, nil, nil)
	validation.Warnings = append(validation.Warnings, preflight.Warnings...)

	return &types.QuickAnalysisOutput{
		Scoring:         unified,
		Recommendations: recs,
		Validation:      validation,
	}, nil
}

// ValidateInput is the pre-flight check. Hard errors (missing identifiers,
// absent skill lists, implausible experience years) block analysis; warnings
// (thin or missing text, empty skill lists) let it proceed with reduced
// confidence.
func ValidateInput(input *types.AnalysisInput) types.InputValidation {
	result := types.InputValidation{
		Errors:   []string{},
		Warnings: []string{},
	}
	if input == nil {
		result.Errors = append(result.Errors, "input is required")
		return result
	}

	if err := input.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if ok := isValidationErrors(err, &fieldErrs); ok {
			for _, fe := range fieldErrs {
				result.Errors = append(result.Errors, describeFieldError(fe))
			}
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
	}
	if input.ResumeSkills == nil {
		result.Errors = append(result.Errors, "resume skills are required (pass an empty list if none were extracted)")
	} else if len(input.ResumeSkills) == 0 {
		result.Warnings = append(result.Warnings, "resume skill list is empty")
	}
	if input.JobSkills == nil {
		result.Errors = append(result.Errors, "job skills are required (pass an empty list if none were extracted)")
	} else if len(input.JobSkills) == 0 {
		result.Warnings = append(result.Warnings, "job skill list is empty")
	}

	if len(input.ResumeText) == 0 {
		result.Warnings = append(result.Warnings, "resume text is missing")
	} else if len(input.ResumeText) < shortTextWarningThreshold {
		result.Warnings = append(result.Warnings, "resume text is very short")
	}
	if len(input.JobText) == 0 {
		result.Warnings = append(result.Warnings, "job text is missing")
	} else if len(input.JobText) < shortTextWarningThreshold {
		result.Warnings = append(result.Warnings, "job text is very short")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	if errs, ok := err.(validator.ValidationErrors); ok {
		*target = errs
		return true
	}
	return false
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "ResumeID":
		return "resume id is required"
	case "JobID":
		return "job id is required"
	case "ResumeYears":
		return "resume years of experience must be between 0 and 50"
	case "RequiredYears":
		return "required years of experience must be between 0 and 30"
	default:
		return fmt.Sprintf("field %s failed validation: %s", fe.Field(), fe.Tag())
	}
}
