// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"

	"github.com/MKhiriev/go-feed-sync/models"
)

// Decoration is the pair of client-inserted rows placed ahead of a page's
// records.
type Decoration struct {
	Title       models.Title
	Description models.Description
}

// Items returns the decoration rows in display order.
func (d Decoration) Items() []models.Item {
	return []models.Item{d.Title, d.Description}
}

// CollectionStore holds the ordered collection the display layer mirrors.
//
// The store is owned by a single sync controller and is not safe for
// concurrent mutation. Every Merge builds a new backing slice, so snapshots
// handed out earlier never change.
type CollectionStore struct {
	items []models.Item
}

// NewCollectionStore returns an empty store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{items: []models.Item{}}
}

// Snapshot returns a copy of the current collection.
func (s *CollectionStore) Snapshot() []models.Item {
	return slices.Clone(s.items)
}

// Len returns the number of rows in the collection.
func (s *CollectionStore) Len() int {
	return len(s.items)
}

// Merge folds batch into the collection under policy and returns the new
// snapshot.
//
// Replace discards the current rows: the result is the decoration (when
// given) followed by the batch. Append keeps the current rows and adds the
// decoration (when given) and the batch after them; the caller decides
// whether the appended page is decorated. Records whose ExternalID is already
// present are dropped, whether the earlier copy is in the kept collection or
// earlier in the same batch.
func (s *CollectionStore) Merge(batch []models.Record, policy models.MergePolicy, decoration *Decoration) []models.Item {
	var kept []models.Item
	if policy == models.Append {
		kept = s.items
	}

	next := make([]models.Item, 0, len(kept)+len(batch)+2)
	next = append(next, kept...)

	seen := make(map[int64]struct{}, len(kept)+len(batch))
	for _, it := range kept {
		if r, ok := it.(models.Record); ok {
			seen[r.ExternalID] = struct{}{}
		}
	}

	if decoration != nil {
		next = append(next, decoration.Items()...)
	}

	for _, r := range batch {
		if _, dup := seen[r.ExternalID]; dup {
			continue
		}
		seen[r.ExternalID] = struct{}{}
		next = append(next, r)
	}

	s.items = next
	return s.Snapshot()
}
