package workers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/metrics"
)

const metricsShutdownTimeout = 5 * time.Second

// MetricsServer exposes a collector on /metrics for as long as it runs.
type MetricsServer struct {
	server *http.Server
	logger *logger.Logger
}

func NewMetricsServer(address string, collector *metrics.Collector, log *logger.Logger) *MetricsServer {
	router := chi.NewRouter()
	router.Handle("/metrics", collector.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &MetricsServer{
		server: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: log,
	}
}

func (s *MetricsServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen metrics address %q: %w", s.server.Addr, err)
	}
	return s.serve(ctx, listener)
}

func (s *MetricsServer) serve(ctx context.Context, listener net.Listener) error {
	s.logger.Info().
		Str("func", "MetricsServer.serve").
		Str("address", listener.Addr().String()).
		Msg("metrics server started")

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsShutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}
		s.logger.Info().Str("func", "MetricsServer.serve").Msg("metrics server stopped")
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("serve metrics: %w", err)
	}
}
