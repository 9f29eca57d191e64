// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG",

	"APP_TITLE",
	"APP_DESCRIPTION",
	"APP_DECORATE_EVERY",
	"APP_SWITCH_ACTION",
	"APP_INFINITE_SCROLL",
	"APP_METRICS_ADDRESS",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_PAGE_SIZE",
	"SERVER_DATASET_PATH",

	"ADAPTER_ADDRESS",
	"ADAPTER_RESOURCE",
	"ADAPTER_REQUEST_TIMEOUT",

	"STORAGE_DB_DATABASE_URI",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TITLE":           "Locations",
		"APP_DESCRIPTION":     "Every place",
		"APP_DECORATE_EVERY":  "5",
		"APP_SWITCH_ACTION":   "more",
		"APP_INFINITE_SCROLL": "true",
		"APP_METRICS_ADDRESS": "localhost:9100",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_PAGE_SIZE":       "15",
		"SERVER_DATASET_PATH":    "/var/data/characters.json",

		"ADAPTER_ADDRESS":         "http://localhost:8080/api",
		"ADAPTER_RESOURCE":        "location",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"STORAGE_DB_DATABASE_URI": "journal.db",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, App{
		Title:          "Locations",
		Description:    "Every place",
		DecorateEvery:  5,
		SwitchAction:   "more",
		InfiniteScroll: true,
		MetricsAddress: "localhost:9100",
	}, cfg.App)

	assert.Equal(t, Server{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: 30 * time.Second,
		PageSize:       15,
		DatasetPath:    "/var/data/characters.json",
	}, cfg.Server)

	assert.Equal(t, Adapter{
		HTTPAddress:    "http://localhost:8080/api",
		Resource:       "location",
		RequestTimeout: 5 * time.Second,
	}, cfg.Adapter)

	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_BadDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
