package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/metrics"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/internal/workers"
)

var ErrNoNavigator = errors.New("client services have no sync controller")

type App struct {
	ui        UI
	navigator service.Navigator
	storages  *store.ClientStorages
	workers   *workers.Workers
	logger    *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp assembles the client. storages may be nil when the journal is off.
// A metrics endpoint is started next to the UI when cfg.MetricsAddress is set.
func NewApp(
	services *service.ClientServices,
	ui UI,
	storages *store.ClientStorages,
	collector *metrics.Collector,
	cfg config.ClientApp,
	log *logger.Logger,
) (*App, error) {
	if services == nil || services.SyncController == nil {
		return nil, ErrNoNavigator
	}

	background := workers.NewWorkers()
	if cfg.MetricsAddress != "" {
		background.Add(workers.NewMetricsServer(cfg.MetricsAddress, collector, log))
	}

	return &App{
		ui:        ui,
		navigator: services.SyncController,
		storages:  storages,
		workers:   background,
		logger:    log,
	}, nil
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if err := a.workers.Run(bgCtx); err != nil {
			a.logger.Err(err).Str("func", "App.run").Msg("background worker failed")
		}
	}()

	uiErr := a.ui.Run(ctx)
	if uiErr != nil {
		uiErr = fmt.Errorf("ui: %w", uiErr)
	}

	// the session goes first so a fetch still in flight cannot write to a
	// journal that is being closed
	a.navigator.Close()
	cancel()
	<-workersDone

	var closeErr error
	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			closeErr = fmt.Errorf("close storages: %w", err)
		}
	}

	a.logger.Info().Str("func", "App.run").Msg("client stopped")
	return errors.Join(uiErr, closeErr)
}
