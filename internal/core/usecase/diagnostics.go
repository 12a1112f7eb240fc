package usecase

import (
	"context"

	"github.com/docuparsepro/backend/internal/core/domain"
	"github.com/docuparsepro/backend/internal/core/ports"
)

const diagnosticCollectionsLimit = 10

// DiagnosticsUseCase backs the /test endpoint. It reports whether the
// optional store is configured and reachable without exposing credentials:
// env values surface only as set / not_set.
type DiagnosticsUseCase struct {
	store     ports.JobStore
	dbURLSet  bool
	dbNameSet bool
}

func NewDiagnosticsUseCase(store ports.JobStore, dbURLSet, dbNameSet bool) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{store: store, dbURLSet: dbURLSet, dbNameSet: dbNameSet}
}

func (uc *DiagnosticsUseCase) Check(ctx context.Context) domain.StoreDiagnostic {
	diag := domain.StoreDiagnostic{
		Backend:          "running",
		Database:         "not_configured",
		DatabaseURL:      envFlag(uc.dbURLSet),
		DatabaseName:     envFlag(uc.dbNameSet),
		ConnectionStatus: "not_connected",
		Collections:      []string{},
	}
	if uc.store == nil {
		return diag
	}

	if err := uc.store.Ping(ctx); err != nil {
		diag.Database = "error: " + truncate(err.Error(), 50)
		return diag
	}
	diag.Database = "connected"
	diag.ConnectionStatus = "connected"

	names, err := uc.store.Collections(ctx, diagnosticCollectionsLimit)
	if err != nil {
		diag.Database = "connected_with_errors: " + truncate(err.Error(), 50)
		return diag
	}
	if names != nil {
		diag.Collections = names
	}
	return diag
}

func envFlag(set bool) string {
	if set {
		return "set"
	}
	return "not_set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
