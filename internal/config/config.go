// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for both the
// feed client and the stub feed server. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation settings of the synchronized collection:
	// decoration texts, the switch action and the metrics endpoint.
	App App `envPrefix:"APP_"`

	// Storage holds the sync journal database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the stub feed server settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote feed settings used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the journal database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds client presentation settings.
type App struct {
	// Title is the header text placed ahead of a page's records.
	// Env: APP_TITLE
	Title string `env:"TITLE"`

	// Description is the text of the description row.
	// Env: APP_DESCRIPTION
	Description string `env:"DESCRIPTION"`

	// DecorateEvery makes appended page N carry the decoration when
	// N % DecorateEvery == 0. Zero means the default, a negative value
	// turns decoration of appended pages off.
	// Env: APP_DECORATE_EVERY
	DecorateEvery int `env:"DECORATE_EVERY"`

	// SwitchAction is the action id bound to the description's switch.
	// Env: APP_SWITCH_ACTION
	SwitchAction string `env:"SWITCH_ACTION"`

	// InfiniteScroll loads the next page when the selection reaches the
	// last row.
	// Env: APP_INFINITE_SCROLL
	InfiniteScroll bool `env:"INFINITE_SCROLL"`

	// MetricsAddress is the "host:port" the client exposes /metrics on.
	// Empty disables the endpoint.
	// Env: APP_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Server holds network settings of the stub feed server.
type Server struct {
	// HTTPAddress is the TCP address on which the feed server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageSize is the number of records served per page.
	// Env: SERVER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// DatasetPath points to a JSON array of records. Empty means the
	// built-in dataset.
	// Env: SERVER_DATASET_PATH
	DatasetPath string `env:"DATASET_PATH"`
}

// DB holds connection settings for the journal database.
type DB struct {
	// DSN is the SQLite data source name, a file path or a
	// "file:name?mode=memory&cache=shared" URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the remote page feed.
type Adapter struct {
	// HTTPAddress is the base URL of the feed API
	// (e.g. "https://rickandmortyapi.com/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Resource is the path segment of the paginated collection
	// (e.g. "character" or "location").
	// Env: ADAPTER_RESOURCE
	Resource string `env:"RESOURCE"`

	// RequestTimeout bounds a single page fetch (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
