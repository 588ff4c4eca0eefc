// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track application-specific operations
var (
	// SummariesTotal tracks the total number of stored summaries
	SummariesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "summaries_total",
			Help: "Total number of summaries in the database",
		},
	)

	// SummarizationsTotal counts summarization runs by method and status
	SummarizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summarizations_total",
			Help: "Total number of summarization runs",
		},
		[]string{"method", "status"},
	)

	// SummarizationDuration measures time to summarize a document
	SummarizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarization_duration_seconds",
			Help:    "Time taken to produce a summary",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	// SummaryCompressionRatio measures summary words / original words
	SummaryCompressionRatio = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_compression_ratio",
			Help:    "Summary word count divided by original word count",
			Buckets: prometheus.LinearBuckets(0.05, 0.05, 19),
		},
	)

	// ContentFetchAttemptsTotal counts article fetch attempts by result
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_attempts_total",
			Help: "Total number of article content fetch attempts",
		},
		[]string{"result"}, // result: success, failure
	)

	// ContentFetchDuration measures time to fetch article content
	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_fetch_duration_seconds",
			Help:    "Time taken to fetch article content",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
	)

	// ContentFetchSize measures fetched content size in bytes
	ContentFetchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_fetch_size_bytes",
			Help:    "Fetched article content size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 4, 10),
		},
	)

	// APIUsageTotal counts recorded API usage events by endpoint and status
	APIUsageTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_usage_total",
			Help: "Total number of recorded API usage events",
		},
		[]string{"endpoint", "status"},
	)
)
