package main

import (
	"fmt"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/handler"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/metrics"
	"github.com/MKhiriev/go-feed-sync/internal/server"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/internal/store"
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

	log := logger.NewLogger("feed-server")
	cfg, err := config.GetFeedServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, metrics.NewCollector(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
