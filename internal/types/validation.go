package types

// IssueSeverity grades a consistency issue. Critical issues invalidate the
// analysis result; everything else is advisory.
type IssueSeverity string

// Issue severities.
const (
	IssueCritical IssueSeverity = "critical"
	IssueHigh     IssueSeverity = "high"
	IssueMedium   IssueSeverity = "medium"
	IssueLow      IssueSeverity = "low"
)

// ValidationIssue is a single cross-component inconsistency found after an
// analysis run.
type ValidationIssue struct {
	Check    string        `json:"check"`
	Severity IssueSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// ValidationResult is the consistency validator's verdict for one run. It is
// derived fresh each run and never persisted. IsValid is false only when a
// critical issue is present; the analysis stays usable either way.
type ValidationResult struct {
	IsValid  bool              `json:"is_valid"`
	Score    float64           `json:"score"`
	Issues   []ValidationIssue `json:"issues"`
	Warnings []string          `json:"warnings"`
	Summary  string            `json:"summary"`
}
