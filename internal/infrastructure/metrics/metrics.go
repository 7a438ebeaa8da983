// Package metrics exposes Prometheus collectors for HTTP traffic and store calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements storeguard.Recorder and feeds the HTTP metrics middleware.
type Collector struct {
	storeCalls   *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

// NewCollector creates the collectors and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		storeCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookly_store_calls_total",
			Help: "Guarded store calls by store, operation and outcome.",
		}, []string{"store", "operation", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookly_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bookly_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.storeCalls,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

// RecordStoreCall counts one guarded store call.
func (c *Collector) RecordStoreCall(store, operation, outcome string) {
	c.storeCalls.WithLabelValues(store, operation, outcome).Inc()
}

// RecordHTTPRequest counts one served request and observes its latency.
func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
