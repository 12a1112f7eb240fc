package bootstrap

import (
	"context"
	"log/slog"

	"github.com/docuparsepro/backend/internal/config"
	"github.com/docuparsepro/backend/internal/core/ports"
	"github.com/docuparsepro/backend/internal/core/usecase"
	"github.com/docuparsepro/backend/internal/infrastructure/repository/postgres"
	"github.com/docuparsepro/backend/internal/infrastructure/resilience"
	"github.com/docuparsepro/backend/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Store       ports.JobStore
	Extractor   *usecase.ExtractUseCase
	Audit       *usecase.AuditUseCase
	Assistant   *usecase.AssistUseCase
	Diagnostics *usecase.DiagnosticsUseCase
	Metrics     *metrics.HTTPServerMetrics

	closeFn func()
}

// New wires the application. The audit store is probed exactly once here:
// when DATABASE_URL is missing or the database is unreachable the app
// starts with a nil store handle and every audit path no-ops.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	store, closeFn := openOptionalStore(ctx, cfg)
	if store != nil {
		exec := resilience.NewExecutor(resilience.DefaultConfig())
		store = resilience.NewGuardedJobStore(store, exec)
	}

	audit := usecase.NewAuditUseCase(store)
	extractor := usecase.NewExtractUseCase(audit)
	assistant := usecase.NewAssistUseCase()
	diagnostics := usecase.NewDiagnosticsUseCase(store, cfg.DatabaseURL != "", cfg.DatabaseName != "")

	return &App{
		Config: cfg,

		Store:       store,
		Extractor:   extractor,
		Audit:       audit,
		Assistant:   assistant,
		Diagnostics: diagnostics,
		Metrics:     metrics.NewHTTPServerMetrics("api"),

		closeFn: closeFn,
	}, nil
}

func openOptionalStore(ctx context.Context, cfg config.Config) (ports.JobStore, func()) {
	if cfg.DatabaseURL == "" {
		slog.Info("audit store not configured, job logging disabled")
		return nil, nil
	}

	db, err := postgres.OpenDB(cfg.DatabaseURL)
	if err != nil {
		slog.Warn("audit store unreachable, continuing without it", "error", err)
		return nil, nil
	}

	repo := postgres.NewJobRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		slog.Warn("audit schema bootstrap failed, continuing without store", "error", err)
		_ = db.Close()
		return nil, nil
	}

	return repo, func() { _ = db.Close() }
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
