// Package trend stores bounded per-(resume, job) analysis history and
// computes score trend statistics over it.
package trend

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MaxRecordsPerKey bounds how much history is retained per (resume, job)
// pair; the oldest record is evicted on insert.
const MaxRecordsPerKey = 10

// Repository is the persistence boundary for analysis history. Get returns
// records ordered oldest to newest. Implementations own retention: Append
// must keep at most MaxRecordsPerKey records per key.
type Repository interface {
	Append(ctx context.Context, record types.AnalysisRecord) error
	Get(ctx context.Context, resumeID, jobID string) ([]types.AnalysisRecord, error)
}

type historyKey struct {
	resumeID string
	jobID    string
}

// MemoryRepository is the in-process Repository used by default and in
// tests. Append and Get are guarded by a single lock, so concurrent analyses
// for the same key serialize their read-modify-write.
type MemoryRepository struct {
	mu      sync.Mutex
	records map[historyKey][]types.AnalysisRecord
}

// NewMemoryRepository creates an empty in-memory history store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[historyKey][]types.AnalysisRecord)}
}

// Append stores a record, evicting the oldest entries beyond the retention
// bound.
func (r *MemoryRepository) Append(_ context.Context, record types.AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := historyKey{resumeID: record.ResumeID, jobID: record.JobID}
	history := append(r.records[key], record)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.Before(history[j].Timestamp)
	})
	if len(history) > MaxRecordsPerKey {
		history = history[len(history)-MaxRecordsPerKey:]
	}
	r.records[key] = history
	return nil
}

// Get returns a copy of the stored history for a key, oldest first.
func (r *MemoryRepository) Get(_ context.Context, resumeID, jobID string) ([]types.AnalysisRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.records[historyKey{resumeID: resumeID, jobID: jobID}]
	out := make([]types.AnalysisRecord, len(history))
	copy(out, history)
	return out, nil
}
