package types

import (
	"time"

	"github.com/google/uuid"
)

// EngineVersion is stamped into analysis outputs and history records so
// stored trends can be traced back to the scoring rules that produced them.
const EngineVersion = "1.0.0"

// AnalysisOutput is the full pipeline result returned by a complete run.
// Callers must check Validation explicitly; internal inconsistencies are
// reported there rather than as errors.
type AnalysisOutput struct {
	AnalysisID uuid.UUID `json:"analysis_id"`
	ResumeID   string    `json:"resume_id"`
	JobID      string    `json:"job_id"`

	Scoring         ScoringResult     `json:"scoring"`
	Recommendations RecommendationSet `json:"recommendations"`
	Impact          ImpactAnalysis    `json:"impact"`
	SoftSkills      SoftSkillResult   `json:"soft_skills"`
	Trend           ScoreTrend        `json:"trend"`
	Validation      ValidationResult  `json:"validation"`

	Timestamp        time.Time `json:"timestamp"`
	Version          string    `json:"version"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
}

// QuickAnalysisOutput is the reduced result for low-latency interactive use:
// scoring and recommendations only, with no trend persistence.
type QuickAnalysisOutput struct {
	Scoring         ScoringResult     `json:"scoring"`
	Recommendations RecommendationSet `json:"recommendations"`
	Validation      ValidationResult  `json:"validation"`
}
