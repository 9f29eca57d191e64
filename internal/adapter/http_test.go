// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient создаёт httpFeedClient, направленный на тестовый сервер
func newTestClient(t *testing.T, serverURL string) FeedClient {
	t.Helper()
	c, err := NewHTTPFeedClient(config.ClientAdapter{
		HTTPAddress:    serverURL + "/api",
		Resource:       "character",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return c
}

func feedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const page2Body = `{
	"info": {
		"count": 826,
		"pages": 42,
		"next": "https://rickandmortyapi.com/api/character?page=3",
		"prev": "https://rickandmortyapi.com/api/character?page=1"
	},
	"results": [
		{"id": 21, "name": "Aqua Morty", "status": "unknown", "species": "Humanoid", "image": "https://rickandmortyapi.com/api/character/avatar/21.jpeg"},
		{"id": 22, "name": "Aqua Rick", "status": "unknown", "species": "Humanoid", "image": "https://rickandmortyapi.com/api/character/avatar/22.jpeg"}
	]
}`

// ── FetchPage: success ──────────────────────────────────────────────────────

func TestFetchPage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/character", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.NotEmpty(t, r.Header.Get("X-Trace-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(page2Body))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).FetchPage(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, models.PageBatch{
		Page: 2,
		Records: []models.Record{
			{ExternalID: 21, Name: "Aqua Morty", Status: "unknown", Species: "Humanoid", ImageRef: "https://rickandmortyapi.com/api/character/avatar/21.jpeg"},
			{ExternalID: 22, Name: "Aqua Rick", Status: "unknown", Species: "Humanoid", ImageRef: "https://rickandmortyapi.com/api/character/avatar/22.jpeg"},
		},
		HasPrevious: true,
		HasNext:     true,
	}, got)
}

func TestFetchPage_LastPage(t *testing.T) {
	srv := feedServer(t, http.StatusOK, `{"info":{"count":1,"pages":1,"next":null,"prev":null},"results":[{"id":1,"name":"Rick Sanchez"}]}`)

	got, err := newTestClient(t, srv.URL).FetchPage(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, got.HasPrevious)
	assert.False(t, got.HasNext)
	require.Len(t, got.Records, 1)
	assert.Equal(t, int64(1), got.Records[0].ExternalID)
}

func TestFetchPage_EmptyResults(t *testing.T) {
	srv := feedServer(t, http.StatusOK, `{"info":{"count":0,"pages":0,"next":null,"prev":null},"results":[]}`)

	got, err := newTestClient(t, srv.URL).FetchPage(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, got.Records)
}

func TestFetchPage_UniqueTraceIDs(t *testing.T) {
	seen := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Trace-ID")] = true
		_, _ = w.Write([]byte(page2Body))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	for range 3 {
		_, err := c.FetchPage(context.Background(), 2)
		require.NoError(t, err)
	}

	assert.Len(t, seen, 3)
}

func TestFetchPage_TraceIDFromContext(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Trace-ID")
		_, _ = w.Write([]byte(page2Body))
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-from-caller")
	_, err := newTestClient(t, srv.URL).FetchPage(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, "trace-from-caller", got)
}

// ── FetchPage: server rejected ──────────────────────────────────────────────

func TestFetchPage_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		contains string
	}{
		{"page out of range", http.StatusNotFound, `{"error":"There is nothing here"}`, "There is nothing here"},
		{"plain text error", http.StatusInternalServerError, "boom", "boom"},
		{"empty body", http.StatusBadGateway, "", "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := feedServer(t, tt.status, tt.body)

			_, err := newTestClient(t, srv.URL).FetchPage(context.Background(), 43)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrServerRejected)
			assert.NotErrorIs(t, err, ErrNetwork)

			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.status, fe.Status)
			assert.Equal(t, 43, fe.Page)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

// ── FetchPage: malformed ────────────────────────────────────────────────────

func TestFetchPage_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>hello</html>"},
		{"no results", `{"info":{"count":0,"pages":0,"next":null,"prev":null}}`},
		{"results of wrong type", `{"info":{},"results":{"id":1}}`},
		{"result without id", `{"info":{},"results":[{"name":"Nobody"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := feedServer(t, http.StatusOK, tt.body)

			_, err := newTestClient(t, srv.URL).FetchPage(context.Background(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			kind, status := Classify(err)
			assert.Equal(t, models.FailureMalformed, kind)
			assert.Zero(t, status)
		})
	}
}

// ── FetchPage: network ──────────────────────────────────────────────────────

func TestFetchPage_ServerDown(t *testing.T) {
	srv := feedServer(t, http.StatusOK, page2Body)
	c := newTestClient(t, srv.URL)
	srv.Close()

	_, err := c.FetchPage(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetchPage_ContextCancelled(t *testing.T) {
	srv := feedServer(t, http.StatusOK, page2Body)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv.URL).FetchPage(ctx, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchPage_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewHTTPFeedClient(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		Resource:       "character",
		RequestTimeout: 50 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = c.FetchPage(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNetwork)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPFeedClient_InvalidConfig(t *testing.T) {
	_, err := NewHTTPFeedClient(config.ClientAdapter{HTTPAddress: "", Resource: "character"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPFeedClient(config.ClientAdapter{HTTPAddress: "localhost:8080", Resource: "//"}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://rickandmortyapi.com/api/", want: "https://rickandmortyapi.com/api"},
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "  http://127.0.0.1:8080/api  ", want: "http://127.0.0.1:8080/api"},
		{raw: "   ", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Classify ────────────────────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	kind, status := Classify(rejectedError(3, http.StatusTooManyRequests, errors.New("slow down")))
	assert.Equal(t, models.FailureServerRejected, kind)
	assert.Equal(t, http.StatusTooManyRequests, status)

	kind, status = Classify(errors.New("anything else"))
	assert.Equal(t, models.FailureNetwork, kind)
	assert.Zero(t, status)
}
