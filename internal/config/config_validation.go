// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig] before projections apply
// their defaults. Only values that no default can repair are rejected.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.PageSize < 0 {
		return fmt.Errorf("%w: negative timeout or page size", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	addr := cfg.Adapter.HTTPAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	u, err := url.Parse(addr)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: bad feed address %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}
	if cfg.Adapter.RequestTimeout <= 0 || strings.Trim(cfg.Adapter.Resource, "/") == "" {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.App.SwitchAction) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *FeedServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 || cfg.PageSize <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
