// Package metrics defines Prometheus metrics for cade-meu-filme.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cmf"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health gauges, updated by the metrics middleware instead of the request
// histogram to keep probe traffic out of latency percentiles.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// Lookup provider metrics.
var (
	LookupRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookup_requests_total",
		Help:      "Total title lookup calls by outcome (ok, empty, error).",
	}, []string{"outcome"})

	LookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Duration of title lookup calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Availability provider metrics.
var (
	AvailabilityRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_requests_total",
		Help:      "Total availability calls by outcome (ok, not_found, error).",
	}, []string{"outcome"})

	AvailabilityDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "availability_duration_seconds",
		Help:      "Duration of availability calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Pipeline metrics.
var (
	AggregateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregate_duration_seconds",
		Help:      "Duration of the per-page availability fan-out in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	BundleFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bundle_failures_total",
		Help:      "Total bundles emitted with an availability error.",
	})
)
