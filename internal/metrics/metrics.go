// Package metrics provides Prometheus metrics for the feed client and the
// stub feed server.
//
// Each [Collector] owns its registry, so several collectors (tests, two
// binaries in one process) never clash on registration. All methods are
// safe on a nil *Collector and do nothing, which lets callers treat metrics
// as optional.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-feed-sync/models"
)

const namespace = "feedsync"

// Collector groups the metrics of one process.
type Collector struct {
	registry *prometheus.Registry

	// sync metrics
	syncsTotal         *prometheus.CounterVec
	fetchDuration      *prometheus.HistogramVec
	editOpsTotal       *prometheus.CounterVec
	collectionSize     prometheus.Gauge
	rejectedTotal      *prometheus.CounterVec
	journalErrorsTotal prometheus.Counter

	// feed server metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewCollector registers every metric on a fresh registry together with the
// Go runtime and process collectors.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		syncsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "syncs_total",
				Help:      "Total number of finished sync attempts",
			},
			[]string{"navigation", "outcome"},
		),
		fetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Page fetch duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		editOpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edit_ops_total",
				Help:      "Total edit ops emitted to the display layer",
			},
			[]string{"op"},
		),
		collectionSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "collection_size",
				Help:      "Number of rows in the synchronized collection",
			},
		),
		rejectedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "navigation_rejected_total",
				Help:      "Total navigation requests refused without fetching",
			},
			[]string{"reason"},
		),
		journalErrorsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "journal_errors_total",
				Help:      "Total sync journal writes that failed",
			},
		),

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests served by the feed server",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// Handler returns the Prometheus HTTP handler for the collector's registry.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// RecordSync records a successful sync and the edit script it produced.
func (c *Collector) RecordSync(nav models.Navigation, counts models.EditCounts, size int, fetch time.Duration) {
	if c == nil {
		return
	}
	c.syncsTotal.WithLabelValues(nav.String(), string(models.OutcomeSynced)).Inc()
	c.fetchDuration.WithLabelValues(string(models.OutcomeSynced)).Observe(fetch.Seconds())
	c.editOpsTotal.WithLabelValues("insert").Add(float64(counts.Inserts))
	c.editOpsTotal.WithLabelValues("remove").Add(float64(counts.Removes))
	c.editOpsTotal.WithLabelValues("update").Add(float64(counts.Updates))
	c.collectionSize.Set(float64(size))
}

// RecordFailure records a failed sync.
func (c *Collector) RecordFailure(nav models.Navigation, fetch time.Duration) {
	if c == nil {
		return
	}
	c.syncsTotal.WithLabelValues(nav.String(), string(models.OutcomeFailed)).Inc()
	c.fetchDuration.WithLabelValues(string(models.OutcomeFailed)).Observe(fetch.Seconds())
}

// RecordRejected records a navigation refused before fetching.
func (c *Collector) RecordRejected(reason models.RejectionReason) {
	if c == nil {
		return
	}
	c.rejectedTotal.WithLabelValues(reason.String()).Inc()
}

// RecordJournalError records a failed journal write.
func (c *Collector) RecordJournalError() {
	if c == nil {
		return
	}
	c.journalErrorsTotal.Inc()
}

// RecordHTTPRequest records an HTTP request served by the feed server.
func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
