// Package bucketsort implements an instrumented bucket sort over the
// sortable element protocol.
//
// Elements are distributed into a data-dependent number of buckets chosen
// by the maximum element, each bucket is comparison-sorted, and the buckets
// are written back in order. See [sortable.Bucketer] for the per-type policy.
package bucketsort

import (
	"log/slog"
	"slices"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/amp-labs/amp-sort/stats"
)

type options struct {
	log *slog.Logger
}

type Option func(*options)

// WithLogger sets the logger used for per-run debug output.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Sorter sorts slices of T in place. A Sorter keeps the statistics of its
// most recent run, so it must not be shared between goroutines; use one
// Sorter per caller instead.
type Sorter[T sortable.Bucketer[T]] struct {
	log   *slog.Logger
	stats stats.Stats
}

// New creates a bucket Sorter for T.
func New[T sortable.Bucketer[T]](opts ...Option) *Sorter[T] {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	if o.log == nil {
		o.log = logger.Get()
	}

	return &Sorter[T]{
		log: o.log.With("algorithm", "bucket"),
	}
}

// Stats returns the counters accumulated by the most recent Sort call.
func (s *Sorter[T]) Stats() stats.Stats {
	return s.stats
}

// ResetStats zeroes the counters.
func (s *Sorter[T]) ResetStats() {
	s.stats.Reset()
}

// Sort reorders data ascending in place. Statistics are reset first.
func (s *Sorter[T]) Sort(data []T) {
	s.stats.Reset()

	if len(data) == 0 {
		return
	}

	if compare.IsSorted(data, &s.stats.Comparisons) {
		s.log.Debug("input already sorted", "stats", s.stats)

		return
	}

	maxValue, _ := compare.Max(data)

	bucketCount := max(maxValue.BucketCount(), 1)
	buckets := make([][]T, bucketCount)
	clamped := 0

	for _, v := range data {
		idx := v.BucketIndex(bucketCount, maxValue)

		if idx < 0 || idx >= bucketCount {
			idx = min(max(idx, 0), bucketCount-1)
			clamped++
		}

		buckets[idx] = append(buckets[idx], v)
	}

	if clamped > 0 {
		s.log.Debug("clamped out of range bucket indices", "count", clamped, "buckets", bucketCount)
	}

	cmp := compare.Counting[T](&s.stats.Comparisons)

	for _, bucket := range buckets {
		if len(bucket) > 1 {
			slices.SortFunc(bucket, cmp)
		}
	}

	i := 0

	for _, bucket := range buckets {
		for _, v := range bucket {
			if !data[i].Equals(v) {
				data[i] = v
				s.stats.Moves++
			}

			i++
		}
	}

	s.log.Debug("bucket sort stats", "stats", s.stats, "buckets", bucketCount, "size", len(data))
}
