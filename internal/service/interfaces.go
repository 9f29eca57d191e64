// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application logic of both binaries.
//
// On the client side the [SyncController] turns navigation requests into
// fetches, merges and edit scripts for the display layer. On the server side
// [FeedService] pages the dataset into feed responses.
package service

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Renderer is the display layer. It receives every outcome of the
// controller in the order the outcomes happened. Implementations must not
// call back into the controller synchronously.
type Renderer interface {
	// RenderSync delivers the edit script of a successful sync together
	// with the new navigation state.
	RenderSync(update models.SyncUpdate)

	// RenderFailure reports a failed fetch. The collection is unchanged.
	RenderFailure(failure models.SyncFailure)

	// RenderRejected reports a request refused before any fetch.
	RenderRejected(rejected models.NavigationRejected)
}

// Navigator is what the display layer drives. [*SyncController] implements it.
type Navigator interface {
	// Navigate performs one navigation and blocks until its outcome has been
	// delivered to the [Renderer]. The returned error repeats the outcome for
	// callers that do not render.
	Navigate(ctx context.Context, nav models.Navigation) error

	// TriggerAction runs the navigation bound to a description's switch
	// action id.
	TriggerAction(ctx context.Context, actionID string) error

	// State returns the controller state.
	State() models.SyncState

	// Navigation returns the current page and which moves are allowed.
	Navigation() models.NavigationState

	// Snapshot returns a copy of the collection.
	Snapshot() []models.Item

	// History returns the most recent journal entries of this session,
	// newest first.
	History(ctx context.Context, limit uint64) ([]models.JournalEntry, error)

	// Close ends the session. An outstanding fetch is discarded when it
	// completes and later requests fail with ErrSessionClosed.
	Close()
}

// FeedService answers page requests of the stub feed server.
type FeedService interface {
	// GetPage returns the page described by query. Pages below 1 or past the
	// last page fail with ErrPageNotFound, unknown resources with
	// ErrUnknownResource.
	GetPage(ctx context.Context, query models.FeedPageQuery) (models.FeedPageResponse, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
