package config

import (
	"fmt"
	"time"
)

// Feed server defaults.
const (
	DefaultServerAddress        = "localhost:8080"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultPageSize             = 20
)

// FeedServerConfig is the stub feed server view of [StructuredConfig].
type FeedServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	PageSize       int
	// DatasetPath is empty when the built-in dataset is served.
	DatasetPath string
}

// GetFeedServerConfig builds and validates the feed server config from the
// merged structured configuration.
func GetFeedServerConfig() (*FeedServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.feedServerConfig()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) feedServerConfig() *FeedServerConfig {
	return &FeedServerConfig{
		HTTPAddress:    withDefault(cfg.Server.HTTPAddress, DefaultServerAddress),
		RequestTimeout: withDefault(cfg.Server.RequestTimeout, DefaultServerRequestTimeout),
		PageSize:       withDefault(cfg.Server.PageSize, DefaultPageSize),
		DatasetPath:    cfg.Server.DatasetPath,
	}
}
