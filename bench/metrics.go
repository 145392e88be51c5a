package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for benchmark runs, labelled by sort algorithm.

var (
	// sortRuns counts individual sort invocations.
	sortRuns = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_runs_total",
		Help: "The total number of sort invocations",
	}, []string{"algorithm"})

	// sortDuration measures wall time per sort invocation.
	sortDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "sort_duration_seconds",
		Help: "Wall time spent in a single sort invocation",
		Buckets: []float64{
			0.00001, // 10µs
			0.0001,  // 100µs
			0.001,   // 1ms
			0.01,    // 10ms
			0.1,     // 100ms
			1,       // 1s
			10,      // 10s
		},
	}, []string{"algorithm"})

	// sortComparisons accumulates element comparisons.
	sortComparisons = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_comparisons_total",
		Help: "The total number of element comparisons performed",
	}, []string{"algorithm"})

	// sortMoves accumulates element writes.
	sortMoves = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_moves_total",
		Help: "The total number of element moves performed",
	}, []string{"algorithm"})

	// verificationFailures counts results that were not sorted permutations of their input.
	verificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_verification_failures_total",
		Help: "The total number of sort results that failed verification",
	}, []string{"algorithm"})
)
