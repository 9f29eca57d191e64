package handler

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/metrics"
	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_HTTPAddress verifies that a configured HTTP address yields
// an HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.FeedServerConfig{HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, cfg, metrics.NewCollector(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that without an address no handler is
// created and the sentinel error is returned.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.FeedServerConfig{}, nil, logger.Nop())

	assert.Nil(t, h)
	assert.True(t, errors.Is(err, errNoHandlersAreCreated))
}
