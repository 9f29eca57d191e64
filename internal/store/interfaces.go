package store

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncJournalRepository records the outcome of every sync attempt of a
// session. It never stores the collection itself.
type SyncJournalRepository interface {
	// Record appends entry and returns its id.
	Record(ctx context.Context, entry models.JournalEntry) (int64, error)
	// List returns up to limit most recent entries of sessionID, newest first.
	List(ctx context.Context, sessionID string, limit uint64) ([]models.JournalEntry, error)
}

// FeedDatasetRepository is the read-only record source behind the stub feed
// server. Resources are named collections such as "character".
type FeedDatasetRepository interface {
	// Count returns the number of records in resource.
	Count(ctx context.Context, resource string) (int, error)
	// Slice returns at most limit records of resource starting at offset.
	// An offset past the end yields an empty slice.
	Slice(ctx context.Context, resource string, offset, limit int) ([]models.FeedRecord, error)
}
