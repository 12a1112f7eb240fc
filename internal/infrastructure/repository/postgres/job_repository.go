package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/docuparsepro/backend/internal/core/domain"
)

// jobsTable is the declared storage identifier for the extraction_job
// record kind. Identifiers are never derived from type names.
const jobsTable = "extraction_jobs"

var (
	insertJobQuery = fmt.Sprintf(`
INSERT INTO %s (id, job_type, filename, size_bytes, status, result_summary, meta, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`, jobsTable)

	listJobsQuery = fmt.Sprintf(`
SELECT id, job_type, filename, size_bytes, status, result_summary, meta, created_at
FROM %s
ORDER BY created_at DESC
LIMIT $1
`, jobsTable)
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *JobRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across concurrent startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026082801)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]s (
	id TEXT PRIMARY KEY,
	job_type TEXT NOT NULL,
	filename TEXT NOT NULL,
	size_bytes BIGINT,
	status TEXT NOT NULL,
	result_summary TEXT,
	meta JSONB,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_%[1]s_created_at ON %[1]s(created_at DESC);
`, jobsTable)
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *JobRepository) CreateJob(ctx context.Context, rec *domain.AuditRecord) error {
	var metaJSON []byte
	if rec.Meta != nil {
		raw, err := json.Marshal(rec.Meta)
		if err != nil {
			return fmt.Errorf("marshal meta: %w", err)
		}
		metaJSON = raw
	}

	_, err := r.db.ExecContext(ctx, insertJobQuery,
		rec.ID, string(rec.JobType), rec.Filename, rec.SizeBytes,
		string(rec.Status), rec.ResultSummary, metaJSON, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job record: %w", err)
	}
	return nil
}

func (r *JobRepository) ListRecentJobs(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	rows, err := r.db.QueryContext(ctx, listJobsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query job records: %w", err)
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		var jobType, status string
		var summary sql.NullString
		var size sql.NullInt64
		var metaRaw []byte

		if err := rows.Scan(&rec.ID, &jobType, &rec.Filename, &size, &status, &summary, &metaRaw, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job record: %w", err)
		}
		rec.JobType = domain.JobType(jobType)
		rec.Status = domain.JobStatus(status)
		rec.SizeBytes = size.Int64
		rec.ResultSummary = summary.String
		if len(metaRaw) > 0 {
			if err := json.Unmarshal(metaRaw, &rec.Meta); err != nil {
				return nil, fmt.Errorf("unmarshal meta: %w", err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate job records: %w", err)
	}
	return records, nil
}

func (r *JobRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	return nil
}

func (r *JobRepository) Collections(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT table_name
FROM information_schema.tables
WHERE table_schema = 'public'
ORDER BY table_name
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}
	return names, nil
}
