package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/trend"
	"github.com/jonathan/resume-matcher/internal/types"
)

func intPtr(v int) *int { return &v }

func baseInput() *types.AnalysisInput {
	return &types.AnalysisInput{
		ResumeID:     "resume-1",
		JobID:        "job-1",
		ResumeSkills: []string{"React", "Node.js"},
		JobSkills:    []string{"React", "Node.js", "Python", "AWS"},
		ResumeText: `EXPERIENCE
• Built web applications with React and Node.js for three years.
• Led a team of 4 engineers and improved page load time by 40%.

EDUCATION
BS in Computer Science.

SKILLS
React, Node.js, JavaScript.`,
		JobText: "We are looking for an engineer with React, Node.js, Python and AWS experience.",
	}
}

func TestRun_FrontendResumeAgainstFullStackJob(t *testing.T) {
	analyzer := New(nil, nil, 0)

	out, err := analyzer.Run(context.Background(), baseInput())
	require.NoError(t, err)

	assert.Contains(t, out.Scoring.Technical.MissingCriticalSkills, "Python")
	assert.GreaterOrEqual(t, out.Scoring.TechnicalFit, 40.0)
	assert.LessOrEqual(t, out.Scoring.TechnicalFit, 70.0)

	found := false
	for _, rec := range out.Recommendations.Recommendations {
		if rec.Type == types.RecMissingCriticalSkill {
			found = true
		}
	}
	assert.True(t, found, "expected a missing critical skill recommendation")

	assert.NotEqual(t, "", out.AnalysisID.String())
	assert.Equal(t, "resume-1", out.ResumeID)
	assert.Equal(t, types.EngineVersion, out.Version)
	assert.True(t, out.Validation.IsValid)
}

func TestRun_ExperienceSurplus(t *testing.T) {
	analyzer := New(nil, nil, 0)
	input := baseInput()
	input.ResumeYears = intPtr(8)
	input.RequiredYears = intPtr(5)

	out, err := analyzer.Run(context.Background(), input)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, out.Scoring.ExperienceFit, 90.0)
	assert.True(t, out.Scoring.Experience.MeetsRequirement)
	for _, rec := range out.Recommendations.Recommendations {
		assert.NotEqual(t, types.RecExperienceGap, rec.Type)
	}
}

func TestRun_EmptySkillListsProceedWithWarnings(t *testing.T) {
	analyzer := New(nil, nil, 0)
	input := &types.AnalysisInput{
		ResumeID:     "resume-1",
		JobID:        "job-1",
		ResumeSkills: []string{},
		JobSkills:    []string{},
	}

	out, err := analyzer.Run(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 100.0, out.Scoring.TechnicalFit)
	assert.LessOrEqual(t, out.Scoring.ConfidenceScore, 40.0)
	assert.NotEmpty(t, out.Validation.Warnings)
}

func TestRun_EmptyResumeTextYieldsNoSoftSkills(t *testing.T) {
	analyzer := New(nil, nil, 0)
	input := baseInput()
	input.ResumeText = ""

	out, err := analyzer.Run(context.Background(), input)
	require.NoError(t, err)

	assert.Empty(t, out.SoftSkills.MatchedSkills)
	assert.Zero(t, out.SoftSkills.Confidence)
	assert.Len(t, out.SoftSkills.MissingSkills, len(types.AllSoftSkillCategories))
}

func TestRun_RecordsTrendHistory(t *testing.T) {
	repo := trend.NewMemoryRepository()
	analyzer := New(repo, nil, 0)
	ctx := context.Background()

	first, err := analyzer.Run(ctx, baseInput())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Trend.DataPoints)

	second, err := analyzer.Run(ctx, baseInput())
	require.NoError(t, err)
	assert.Equal(t, 2, second.Trend.DataPoints)
	assert.Equal(t, types.TrendStable, second.Trend.Direction)
}

func TestRun_OverallMatchesWeightedFormula(t *testing.T) {
	analyzer := New(nil, nil, 0)

	out, err := analyzer.Run(context.Background(), baseInput())
	require.NoError(t, err)

	expected := out.Scoring.TechnicalFit*types.TechnicalWeight +
		out.Scoring.ExperienceFit*types.ExperienceWeight +
		out.Scoring.ATSOptimization*types.ATSWeight
	assert.InDelta(t, expected, out.Scoring.OverallMatch, 5.0)

	sum := out.Recommendations.CriticalCount + out.Recommendations.HighPriorityCount +
		out.Recommendations.MediumCount + out.Recommendations.LowCount
	assert.Equal(t, len(out.Recommendations.Recommendations), sum)
}

func TestRunQuick_Idempotent(t *testing.T) {
	analyzer := New(nil, nil, 0)

	first, err := analyzer.RunQuick(baseInput())
	require.NoError(t, err)
	second, err := analyzer.RunQuick(baseInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunQuick_LeavesHistoryUntouched(t *testing.T) {
	repo := trend.NewMemoryRepository()
	analyzer := New(repo, nil, 0)

	_, err := analyzer.RunQuick(baseInput())
	require.NoError(t, err)

	history, err := repo.Get(context.Background(), "resume-1", "job-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestRun_RejectsInvalidInput(t *testing.T) {
	analyzer := New(nil, nil, 0)

	_, err := analyzer.Run(context.Background(), &types.AnalysisInput{JobID: "job-1"})
	require.Error(t, err)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Errors, "resume id is required")
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*types.AnalysisInput)
		wantValid    bool
		wantError    string
		wantWarnings int
	}{
		{
			name:      "valid input",
			mutate:    func(in *types.AnalysisInput) {},
			wantValid: true,
		},
		{
			name:      "missing job id",
			mutate:    func(in *types.AnalysisInput) { in.JobID = "" },
			wantValid: false,
			wantError: "job id is required",
		},
		{
			name:      "nil resume skills",
			mutate:    func(in *types.AnalysisInput) { in.ResumeSkills = nil },
			wantValid: false,
			wantError: "resume skills are required (pass an empty list if none were extracted)",
		},
		{
			name:      "resume years out of range",
			mutate:    func(in *types.AnalysisInput) { in.ResumeYears = intPtr(60) },
			wantValid: false,
			wantError: "resume years of experience must be between 0 and 50",
		},
		{
			name:      "required years out of range",
			mutate:    func(in *types.AnalysisInput) { in.RequiredYears = intPtr(35) },
			wantValid: false,
			wantError: "required years of experience must be between 0 and 30",
		},
		{
			name:         "missing resume text warns",
			mutate:       func(in *types.AnalysisInput) { in.ResumeText = "" },
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:         "short job text warns",
			mutate:       func(in *types.AnalysisInput) { in.JobText = "short posting" },
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:         "empty skill lists warn",
			mutate:       func(in *types.AnalysisInput) { in.ResumeSkills = []string{}; in.JobSkills = []string{} },
			wantValid:    true,
			wantWarnings: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			tt.mutate(input)

			result := ValidateInput(input)

			assert.Equal(t, tt.wantValid, result.IsValid)
			if tt.wantError != "" {
				assert.Contains(t, result.Errors, tt.wantError)
			}
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestValidateInput_NilInput(t *testing.T) {
	result := ValidateInput(nil)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "input is required")
}
