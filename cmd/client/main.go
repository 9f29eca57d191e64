package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/client"
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/metrics"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/internal/tui"
	"github.com/MKhiriev/go-feed-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("feed-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	feed, err := adapter.NewHTTPFeedClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create feed adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	collector := metrics.NewCollector()
	renderer := tui.NewProgramRenderer()
	services := service.NewClientServices(feed, renderer, storages, cfg.App, collector, log)

	ui := tui.New(services.SyncController, renderer, cfg.App, buildInfo, services.SyncController.SessionID(), log)

	app, err := client.NewApp(services, ui, storages, collector, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
