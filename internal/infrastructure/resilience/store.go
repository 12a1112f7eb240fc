package resilience

import (
	"context"

	"github.com/docuparsepro/backend/internal/core/domain"
	"github.com/docuparsepro/backend/internal/core/ports"
)

// GuardedJobStore decorates a JobStore with the circuit breaker so a dead
// database sheds audit traffic instead of stalling every request on
// connection timeouts.
type GuardedJobStore struct {
	inner ports.JobStore
	exec  *Executor
}

func NewGuardedJobStore(inner ports.JobStore, exec *Executor) *GuardedJobStore {
	if exec == nil {
		exec = NewExecutor(DefaultConfig())
	}
	return &GuardedJobStore{inner: inner, exec: exec}
}

func (s *GuardedJobStore) CreateJob(ctx context.Context, rec *domain.AuditRecord) error {
	return s.exec.Execute(ctx, "jobs.create", func(ctx context.Context) error {
		return s.inner.CreateJob(ctx, rec)
	})
}

func (s *GuardedJobStore) ListRecentJobs(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	var records []domain.AuditRecord
	err := s.exec.Execute(ctx, "jobs.list", func(ctx context.Context) error {
		var listErr error
		records, listErr = s.inner.ListRecentJobs(ctx, limit)
		return listErr
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GuardedJobStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *GuardedJobStore) Collections(ctx context.Context, limit int) ([]string, error) {
	return s.inner.Collections(ctx, limit)
}
