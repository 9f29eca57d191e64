package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

// feedDataset keeps every resource in memory. It is filled once at start-up
// and never modified, so it is safe for concurrent reads.
type feedDataset struct {
	resources map[string][]models.FeedRecord

	logger *logger.Logger
}

// NewFeedDataset loads the dataset file at path. The file is a JSON object
// mapping resource names to arrays of records:
//
//	{"character": [{"id": 1, "name": "Rick Sanchez", ...}], "location": [...]}
//
// An empty path selects the built-in dataset (see [BuiltinDataset]).
// Records without a positive id are rejected.
func NewFeedDataset(path string, logger *logger.Logger) (FeedDatasetRepository, error) {
	if path == "" {
		logger.Info().Msg("using built-in feed dataset")
		return &feedDataset{resources: BuiltinDataset(), logger: logger}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDataset, err)
	}

	var resources map[string][]models.FeedRecord
	if err = json.Unmarshal(raw, &resources); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrReadingDataset, path, err)
	}

	normalized := make(map[string][]models.FeedRecord, len(resources))
	for name, records := range resources {
		for i, r := range records {
			if r.ID <= 0 {
				return nil, fmt.Errorf("%w: %s[%d] has no id", ErrReadingDataset, name, i)
			}
		}
		normalized[strings.ToLower(name)] = records
	}

	logger.Info().Str("path", path).Int("resources", len(normalized)).Msg("feed dataset loaded")
	return &feedDataset{resources: normalized, logger: logger}, nil
}

func (d *feedDataset) Count(_ context.Context, resource string) (int, error) {
	records, ok := d.resources[strings.ToLower(resource)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownResource, resource)
	}
	return len(records), nil
}

func (d *feedDataset) Slice(_ context.Context, resource string, offset, limit int) ([]models.FeedRecord, error) {
	records, ok := d.resources[strings.ToLower(resource)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResource, resource)
	}
	if offset < 0 || limit <= 0 || offset >= len(records) {
		return []models.FeedRecord{}, nil
	}
	end := min(offset+limit, len(records))
	return slices.Clone(records[offset:end]), nil
}
