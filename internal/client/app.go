package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-light-client/internal/adapter"
	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/service"
	"github.com/MKhiriev/go-light-client/internal/store"
	"github.com/MKhiriev/go-light-client/internal/workers"
)

// MetricsNamespace prefixes every metric exposed by the client.
const MetricsNamespace = "light_client"

type App struct {
	store    store.Store
	services *service.ClientServices
	workers  *workers.Workers
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the store, connects to the node and prepares the background
// workers. Prometheus metrics are registered only when
// cfg.Workers.MetricsAddress is set.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	localStore, err := store.NewStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local store: %w", err)
	}

	rpc, err := adapter.NewNodeRPCClient(cfg.Adapter, logger)
	if err != nil {
		_ = localStore.Close()
		return nil, fmt.Errorf("create node rpc client: %w", err)
	}

	var metrics *service.Metrics
	if cfg.Workers.MetricsAddress != "" {
		metrics = service.PrometheusMetrics(MetricsNamespace)
	}

	services := service.NewClientServices(localStore, rpc, cfg.Workers.SyncInterval, metrics, logger)

	background := workers.NewWorkers(services.SyncJob)
	if cfg.Workers.MetricsAddress != "" {
		background.Add(newMetricsServer(cfg.Workers.MetricsAddress, logger))
	}

	return &App{
		store:    localStore,
		services: services,
		workers:  background,
		logger:   logger,
	}, nil
}

// Services exposes the client services, e.g. for submitting transactions.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run syncs until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.RunContext(ctx)
}

// RunContext runs the background workers until ctx is cancelled, then closes
// the store.
func (a *App) RunContext(ctx context.Context) error {
	a.logger.Info().Msg("light client started")

	runErr := a.workers.Run(ctx)

	if err := a.store.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.RunContext").Msg("failed to close store")
		if runErr == nil {
			runErr = fmt.Errorf("close store: %w", err)
		}
	}

	a.logger.Info().Msg("light client stopped")
	return runErr
}
