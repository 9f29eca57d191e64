package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Title: "env title", SwitchAction: "env-action"}},
		&StructuredConfig{App: App{Title: "flag title"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag title", cfg.App.Title)
	assert.Equal(t, "env-action", cfg.App.SwitchAction)
}

func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestBuilder_EnvFlagsJSON(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"resource": "location"},
	})
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS":  "http://env:8080/api",
		"ADAPTER_RESOURCE": "episode",
		"CONFIG":           jsonPath,
	})

	b := newConfigBuilder()
	b.args = []string{"-u", "http://flag:8080/api"}

	cfg, err := b.withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "http://flag:8080/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "location", cfg.Adapter.Resource)
}

func TestBuilder_MissingJSONFile(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder()
	b.args = []string{"-c", "/definitely/not/here.json"}

	_, err := b.withEnv().withFlags().withJSON().build()
	assert.Error(t, err)
}

func TestBuilder_BadFlag(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder()
	b.args = []string{"-unknown"}

	_, err := b.withEnv().withFlags().build()
	assert.Error(t, err)
}
