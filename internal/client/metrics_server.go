package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-light-client/internal/logger"
)

// MetricsRoute is the path Prometheus scrapes.
const MetricsRoute = "/metrics"

const metricsShutdownTimeout = 5 * time.Second

// metricsServer serves the default Prometheus registry as a worker.
type metricsServer struct {
	server *http.Server
	logger *logger.Logger
}

func newMetricsServer(address string, logger *logger.Logger) *metricsServer {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Handle(MetricsRoute, promhttp.Handler())

	return &metricsServer{
		server: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Run implements workers.Worker.
func (m *metricsServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		m.logger.Info().Str("address", m.server.Addr).Msg("metrics server listening")
		errCh <- m.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := m.server.Shutdown(shutdownCtx); err != nil {
		m.logger.Err(err).Str("func", "metricsServer.Run").Msg("metrics server shutdown")
	}
	return nil
}
