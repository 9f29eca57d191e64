// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync core and the
// remote page feed.
//
// The primary abstraction is [FeedClient], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPFeedClient]) for feeds shaped like the Rick and Morty API.
//
// Every failure is returned as a [*FetchError] classified as network,
// server-rejected or malformed, so callers can use [errors.Is] against
// [ErrNetwork], [ErrServerRejected] and [ErrMalformed] without knowing the
// transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/feed_client_mock.go -package=mock

// FeedClient fetches numbered pages from the remote feed. Fetching the same
// page twice has no side effects on the feed.
type FeedClient interface {
	// FetchPage returns the records of page together with the feed's
	// has-previous/has-next flags. The returned batch has Page set to page.
	// On failure the error is a [*FetchError].
	FetchPage(ctx context.Context, page int) (models.PageBatch, error)
}
