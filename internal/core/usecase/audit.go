package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docuparsepro/backend/internal/core/domain"
	"github.com/docuparsepro/backend/internal/core/ports"
)

const DefaultJobsLimit = 20

// AuditUseCase is the best-effort audit side channel. The store handle is
// nil when no database is configured; every store failure is absorbed so
// the extraction path never degrades.
type AuditUseCase struct {
	store ports.JobStore
}

func NewAuditUseCase(store ports.JobStore) *AuditUseCase {
	return &AuditUseCase{store: store}
}

// Record appends one audit entry. It never returns an error: a missing
// store is a no-op and a write failure is logged and dropped, not retried.
func (uc *AuditUseCase) Record(ctx context.Context, rec *domain.AuditRecord) {
	if uc.store == nil {
		return
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if err := uc.store.CreateJob(ctx, rec); err != nil {
		slog.Warn("audit_write_dropped",
			"job_type", string(rec.JobType),
			"filename", rec.Filename,
			"error", err,
		)
	}
}

// ListJobs returns the most recent records. Any failure degrades to an
// empty listing, mirroring the recorder's availability-first policy.
func (uc *AuditUseCase) ListJobs(ctx context.Context, limit int) []domain.AuditRecordView {
	if limit <= 0 {
		limit = DefaultJobsLimit
	}
	items := []domain.AuditRecordView{}
	if uc.store == nil {
		return items
	}

	records, err := uc.store.ListRecentJobs(ctx, limit)
	if err != nil {
		slog.Warn("jobs_listing_degraded", "limit", limit, "error", err)
		return items
	}

	for _, rec := range records {
		items = append(items, rec.View())
	}
	return items
}
