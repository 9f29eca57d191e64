package service

import (
	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/metrics"
	"github.com/MKhiriev/go-feed-sync/internal/store"
)

// ClientServices groups the services of the feed client.
type ClientServices struct {
	SyncController *SyncController
}

// NewClientServices wires a sync session against feed. Outcomes go to
// renderer; storages may be nil to run without a journal.
func NewClientServices(
	feed adapter.FeedClient,
	renderer Renderer,
	storages *store.ClientStorages,
	cfg config.ClientApp,
	collector *metrics.Collector,
	logger *logger.Logger,
) *ClientServices {
	var journal store.SyncJournalRepository
	if storages != nil {
		journal = storages.JournalRepository
	}

	return &ClientServices{
		SyncController: NewSyncController(feed, renderer, NewDecorationPolicy(cfg), journal, collector, logger),
	}
}
