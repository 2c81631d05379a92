package types

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is the append-only historical entry the trend store keeps
// per (resume, job) pair. Only the most recent entries are retained; the
// store owns eviction.
type AnalysisRecord struct {
	ID              uuid.UUID `json:"id"`
	ResumeID        string    `json:"resume_id"`
	JobID           string    `json:"job_id"`
	TechnicalFit    float64   `json:"technical_fit"`
	ExperienceFit   float64   `json:"experience_fit"`
	ATSOptimization float64   `json:"ats_optimization"`
	OverallMatch    float64   `json:"overall_match"`
	Timestamp       time.Time `json:"timestamp"`
	Version         string    `json:"version"`
}

// TrendDirection classifies how the overall match score has moved.
type TrendDirection string

// Trend directions.
const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// TrendConfidence expresses how much the trend classification can be trusted,
// based on the number of data points and their variation.
type TrendConfidence string

// Trend confidence levels.
const (
	TrendConfidenceHigh   TrendConfidence = "high"
	TrendConfidenceMedium TrendConfidence = "medium"
	TrendConfidenceLow    TrendConfidence = "low"
)

// ScoreTrend summarizes the stored history for one (resume, job) pair.
// Zero records yield a well-defined stable result, never an error.
type ScoreTrend struct {
	Direction       TrendDirection  `json:"direction"`
	DataPoints      int             `json:"data_points"`
	FirstScore      float64         `json:"first_score"`
	LastScore       float64         `json:"last_score"`
	AverageScore    float64         `json:"average_score"`
	Variation       float64         `json:"variation"`
	ImprovementRate float64         `json:"improvement_rate"`
	Confidence      TrendConfidence `json:"confidence"`
}
