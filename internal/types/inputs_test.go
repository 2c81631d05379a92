package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisInput_Validate(t *testing.T) {
	years := 5
	tooMany := 60

	tests := []struct {
		name      string
		input     AnalysisInput
		wantError bool
	}{
		{
			name:  "valid minimal input",
			input: AnalysisInput{ResumeID: "r1", JobID: "j1"},
		},
		{
			name:      "missing resume id",
			input:     AnalysisInput{JobID: "j1"},
			wantError: true,
		},
		{
			name:      "missing job id",
			input:     AnalysisInput{ResumeID: "r1"},
			wantError: true,
		},
		{
			name:  "years in range",
			input: AnalysisInput{ResumeID: "r1", JobID: "j1", ResumeYears: &years, RequiredYears: &years},
		},
		{
			name:      "resume years out of range",
			input:     AnalysisInput{ResumeID: "r1", JobID: "j1", ResumeYears: &tooMany},
			wantError: true,
		},
		{
			name:      "required years out of range",
			input:     AnalysisInput{ResumeID: "r1", JobID: "j1", RequiredYears: &tooMany},
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
