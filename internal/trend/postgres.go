package trend

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-matcher/internal/types"
)

// PostgresRepository is the Repository backed by PostgreSQL, for running the
// engine against shared history. Schema:
//
//	CREATE TABLE analysis_history (
//	    id UUID PRIMARY KEY,
//	    resume_id TEXT NOT NULL,
//	    job_id TEXT NOT NULL,
//	    technical_fit DOUBLE PRECISION NOT NULL,
//	    experience_fit DOUBLE PRECISION NOT NULL,
//	    ats_optimization DOUBLE PRECISION NOT NULL,
//	    overall_match DOUBLE PRECISION NOT NULL,
//	    analyzed_at TIMESTAMPTZ NOT NULL,
//	    engine_version TEXT NOT NULL
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Close closes the connection pool.
func (r *PostgresRepository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Append inserts a record and trims the key's history to the retention bound
// in one transaction, so concurrent writers cannot grow it past the cap.
func (r *PostgresRepository) Append(ctx context.Context, record types.AnalysisRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO analysis_history
		     (id, resume_id, job_id, technical_fit, experience_fit, ats_optimization, overall_match, analyzed_at, engine_version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		record.ID, record.ResumeID, record.JobID,
		record.TechnicalFit, record.ExperienceFit, record.ATSOptimization, record.OverallMatch,
		record.Timestamp, record.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis record: %w", err)
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM analysis_history
		 WHERE resume_id = $1 AND job_id = $2 AND id NOT IN (
		     SELECT id FROM analysis_history
		     WHERE resume_id = $1 AND job_id = $2
		     ORDER BY analyzed_at DESC LIMIT $3
		 )`,
		record.ResumeID, record.JobID, MaxRecordsPerKey,
	)
	if err != nil {
		return fmt.Errorf("failed to trim analysis history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit analysis record: %w", err)
	}
	return nil
}

// Get retrieves the stored history for a key, oldest first.
func (r *PostgresRepository) Get(ctx context.Context, resumeID, jobID string) ([]types.AnalysisRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, resume_id, job_id, technical_fit, experience_fit, ats_optimization, overall_match, analyzed_at, engine_version
		 FROM analysis_history
		 WHERE resume_id = $1 AND job_id = $2
		 ORDER BY analyzed_at ASC`,
		resumeID, jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis history: %w", err)
	}
	defer rows.Close()

	var records []types.AnalysisRecord
	for rows.Next() {
		var rec types.AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.ResumeID, &rec.JobID,
			&rec.TechnicalFit, &rec.ExperienceFit, &rec.ATSOptimization, &rec.OverallMatch,
			&rec.Timestamp, &rec.Version); err != nil {
			return nil, fmt.Errorf("failed to scan analysis record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
