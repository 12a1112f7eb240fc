package ports

import (
	"context"

	"github.com/docuparsepro/backend/internal/core/domain"
)

// JobStore persists and reads extraction audit records. Implementations may
// be absent at runtime; callers hold a nil handle when no store is
// configured and must tolerate every error.
type JobStore interface {
	CreateJob(ctx context.Context, rec *domain.AuditRecord) error
	ListRecentJobs(ctx context.Context, limit int) ([]domain.AuditRecord, error)
	Ping(ctx context.Context) error
	Collections(ctx context.Context, limit int) ([]string, error)
}
