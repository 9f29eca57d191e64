package store

import (
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
)

// Storages groups the repositories of the stub feed server.
type Storages struct {
	DatasetRepository FeedDatasetRepository
}

// NewStorages loads the dataset named by cfg.DatasetPath, or the built-in one.
func NewStorages(cfg config.FeedServerConfig, logger *logger.Logger) (*Storages, error) {
	dataset, err := NewFeedDataset(cfg.DatasetPath, logger)
	if err != nil {
		return nil, err
	}
	return &Storages{DatasetRepository: dataset}, nil
}
