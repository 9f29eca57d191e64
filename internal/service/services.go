package service

import (
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/models"
)

// Services groups the services of the stub feed server.
type Services struct {
	FeedService    FeedService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.FeedServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		FeedService:    NewFeedService(storages.DatasetRepository, cfg.PageSize, logger),
		AppInfoService: appInfo,
	}, nil
}
