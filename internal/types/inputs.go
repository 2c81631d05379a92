package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalysisInput carries everything a single analysis run needs. The engine
// never mutates it; skill lists and text are caller-supplied as extracted by
// the upstream resume/job ingestion layer.
type AnalysisInput struct {
	ResumeID string `json:"resume_id" validate:"required"`
	JobID    string `json:"job_id" validate:"required"`

	ResumeSkills []string `json:"resume_skills"`
	JobSkills    []string `json:"job_skills"`

	ResumeText string `json:"resume_text,omitempty"`
	JobText    string `json:"job_text,omitempty"`

	// Years of experience. Nil means unspecified, which is distinct from zero.
	ResumeYears   *int `json:"resume_years,omitempty" validate:"omitempty,min=0,max=50"`
	RequiredYears *int `json:"required_years,omitempty" validate:"omitempty,min=0,max=30"`
}

// Validate validates the AnalysisInput using the validator.
func (in *AnalysisInput) Validate() error {
	validate := validator.New()
	return validate.Struct(in)
}

// InputValidation is the result of the pre-flight input check. Errors block
// analysis; warnings reduce confidence but do not.
type InputValidation struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
