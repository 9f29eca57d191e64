package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/models"
)

const traceIDHeader = "X-Trace-ID"

type httpFeedClient struct {
	client   *utils.HTTPClient
	resource string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPFeedClient constructs an HTTP/REST implementation of [FeedClient].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Pages are requested as GET {base}/{resource}?page=N.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL, or if the resource is empty.
func NewHTTPFeedClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (FeedClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	resource := strings.Trim(adapterCfg.Resource, "/")
	if resource == "" {
		return nil, fmt.Errorf("invalid adapter resource %q", adapterCfg.Resource)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpFeedClient{
		client:   client,
		resource: "/" + resource,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchPage implements [FeedClient]. It GETs {resource}?page=N and decodes the
// Rick and Morty page shape. Transport failures (including timeouts and
// context cancellation) are network errors, non-2xx responses are
// server-rejected with their status, and bodies that do not decode or lack a
// results array are malformed. A trace id already in ctx is sent as is.
func (h *httpFeedClient) FetchPage(ctx context.Context, page int) (models.PageBatch, error) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.traceIDs.Generate()
	}
	log := h.logger.With().
		Str("func", "*httpFeedClient.FetchPage").
		Str("trace_id", traceID).
		Int("page", page).
		Logger()

	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID).
		SetQueryParam("page", strconv.Itoa(page)).
		Get(h.resource)
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", time.Since(started)).Msg("page request failed")
		return models.PageBatch{}, networkError(page, err)
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Dur("elapsed", time.Since(started)).
		Msg("page response received")

	if err = mapHTTPError(resp, page); err != nil {
		return models.PageBatch{}, err
	}

	batch, err := decodePage(resp.Body(), page)
	if err != nil {
		log.Error().Err(err).Msg("page response malformed")
		return models.PageBatch{}, err
	}

	return batch, nil
}
