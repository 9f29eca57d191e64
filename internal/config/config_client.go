package config

import (
	"fmt"
	"time"
)

// Client defaults, applied to fields left empty by every source.
const (
	DefaultFeedAddress    = "https://rickandmortyapi.com/api"
	DefaultFeedResource   = "character"
	DefaultRequestTimeout = 10 * time.Second
	DefaultJournalDSN     = "feedsync_journal.db"
	DefaultTitle          = "Characters"
	DefaultDescription    = "Everyone from the show. Flip the switch for the next page."
	DefaultDecorateEvery  = 10
	DefaultSwitchAction   = "next-page"
)

// ClientApp holds client-side presentation settings derived from the shared
// structured config.
type ClientApp struct {
	Title         string
	Description   string
	DecorateEvery int
	SwitchAction  string
	// InfiniteScroll issues a load-more when the last row gets selected.
	InfiniteScroll bool
	// MetricsAddress is empty when the metrics endpoint is disabled.
	MetricsAddress string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the feed API.
	HTTPAddress string
	// Resource is the paginated collection path under HTTPAddress.
	Resource string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the sync journal.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains presentation settings.
	App ClientApp
	// Adapter contains the feed address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientConfig()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientConfig() *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Title:          withDefault(cfg.App.Title, DefaultTitle),
			Description:    withDefault(cfg.App.Description, DefaultDescription),
			DecorateEvery:  withDefault(cfg.App.DecorateEvery, DefaultDecorateEvery),
			SwitchAction:   withDefault(cfg.App.SwitchAction, DefaultSwitchAction),
			InfiniteScroll: cfg.App.InfiniteScroll,
			MetricsAddress: cfg.App.MetricsAddress,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    withDefault(cfg.Adapter.HTTPAddress, DefaultFeedAddress),
			Resource:       withDefault(cfg.Adapter.Resource, DefaultFeedResource),
			RequestTimeout: withDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: withDefault(cfg.Storage.DB.DSN, DefaultJournalDSN),
			},
		},
	}

	return clientCfg
}

func withDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
