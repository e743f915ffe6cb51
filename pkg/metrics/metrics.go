package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Entity mutations applied through the store.
	MutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_mutation_count",
			Help: "Total number of entity mutations applied",
		},
		[]string{"entity", "action"}, // entity: pillar, goal, habit, settings; action: create, delete, toggle, update, reset
	)

	// Full-snapshot rewrite latency (seconds).
	SnapshotWriteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_snapshot_write_duration_seconds",
			Help:    "Snapshot rewrite duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"name"},
	)

	// HTTP request latency (seconds).
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	// Daily wisdom fetch outcomes.
	WisdomFetchCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_wisdom_fetch_count",
			Help: "Total number of daily wisdom fetches",
		},
		[]string{"outcome"}, // outcome: cached, fetched, fallback
	)
)

// IncrementMutation counts one applied mutation.
func IncrementMutation(entity, action string) {
	MutationCount.WithLabelValues(entity, action).Inc()
}

// RecordSnapshotWrite records one snapshot rewrite.
func RecordSnapshotWrite(name string, duration time.Duration) {
	SnapshotWriteDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// RecordHTTPRequestDuration records one served request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementWisdomFetch counts one wisdom lookup by outcome.
func IncrementWisdomFetch(outcome string) {
	WisdomFetchCount.WithLabelValues(outcome).Inc()
}
