// Package metrics exposes prometheus instrumentation for the extraction
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ExtractionRequests counts finished extraction calls by outcome
	ExtractionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "extraction_requests_total",
		Help: "Total extraction requests by outcome",
	}, []string{"status"})

	// ExtractionAttempts counts individual inference attempts
	ExtractionAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "extraction_attempts_total",
		Help: "Total inference attempts including retries",
	})

	// ExtractionFailures counts failed extraction calls by failure kind
	ExtractionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "extraction_failures_total",
		Help: "Failed extraction requests by failure kind",
	}, []string{"kind"})

	// ExtractionRetries counts retries triggered by shape violations
	ExtractionRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "extraction_retries_total",
		Help: "Retries caused by closed-record shape violations",
	})

	// ExtractionDuration observes end-to-end extraction latency
	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "extraction_duration_seconds",
		Help:    "End-to-end extraction duration in seconds",
		Buckets: prometheus.DefBuckets,
	})
)
