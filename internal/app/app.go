package app

import (
	"context"
	"fmt"

	"github.com/yungbote/routinely-backend/internal/data/db"
	"github.com/yungbote/routinely-backend/internal/http"
	"github.com/yungbote/routinely-backend/internal/observability"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *db.Service
	Clients  Clients
	Repos    Repos
	Services Services
	Server   *http.Server

	otelShutdown func(context.Context) error
}

// Open connects to the database and clients and wires the service layer.
// It does not migrate; call Migrate or use New for the full server setup.
func Open(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	dbs, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	clients, err := wireClients(log, cfg)
	if err != nil {
		_ = dbs.Close()
		return nil, err
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics(log)
	}

	reposet := wireRepos(dbs.DB(), log)
	serviceset := wireServices(dbs.DB(), log, cfg, reposet, clients, metrics)

	a := &App{
		Log:      log,
		Cfg:      cfg,
		DB:       dbs,
		Clients:  clients,
		Repos:    reposet,
		Services: serviceset,
	}
	a.Server = wireServer(log, cfg, wireHandlers(log, cfg, serviceset), metrics)
	return a, nil
}

// New opens the app, runs migrations and installs tracing.
func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	a, err := Open(ctx, log, cfg)
	if err != nil {
		return nil, err
	}
	if err := a.Migrate(); err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.otelShutdown = observability.InitOTel(ctx, log, cfg.Otel)
	return a, nil
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrateAll(); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(ctx, a.Cfg.Addr())
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.WithoutCancel(ctx)); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	a.Clients.Close()
	if err := a.DB.Close(); err != nil {
		a.Log.Warn("database close failed", "error", err)
	}
	a.Log.Sync()
}
