// Package radixsort implements an instrumented least-significant-digit-first
// radix sort over the sortable element protocol.
//
// Each pass is a stable counting sort on one digit place, in base
// [sortable.Radix]. Types that extract digits from their magnitude (see
// [sortable.SignCorrected]) get a final comparison sort so that negative
// values end up in front; other types rely on the digit passes alone.
package radixsort

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

// Sorter sorts slices of T in place. It is not safe for concurrent use.
type Sorter[T sortable.Digiter[T]] struct {
	log           *slog.Logger
	stats         stats.Stats
	signCorrected bool
}

// New creates a radix Sorter for T.
func New[T sortable.Digiter[T]](opts ...Option) *Sorter[T] {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	if o.log == nil {
		o.log = logger.Get()
	}

	return &Sorter[T]{
		log:           o.log.With("algorithm", "radix"),
		signCorrected: sortable.NeedsSignCorrection[T](),
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

// Sort reorders data in place. Statistics are reset first.
func (s *Sorter[T]) Sort(data []T) {
	s.stats.Reset()

	if len(data) == 0 {
		return
	}

	maxDigits := 0

	for _, v := range data {
		s.stats.Comparisons++
		maxDigits = max(maxDigits, v.DigitPlaces())
	}

	temp := make([]T, len(data))
	digits := make([]int, len(data))
	count := make([]int, sortable.Radix)

	for place := range maxDigits {
		count = s.pass(data, temp, digits, count, place)
	}

	if s.signCorrected {
		slices.SortFunc(data, compare.Counting[T](&s.stats.Comparisons))
	}

	s.log.Debug("radix sort stats", "stats", s.stats, "passes", maxDigits, "size", len(data))
}

// pass performs one stable counting sort of data on the digit at place,
// using temp as the output buffer. Digits are usually in [0, Radix), but
// non-numeric strings report character codes, so the histogram grows to
// fit the largest digit seen. The (possibly grown) histogram is returned
// for reuse by the next pass.
func (s *Sorter[T]) pass(data, temp []T, digits, count []int, place int) []int {
	top := sortable.Radix - 1

	for i, v := range data {
		d := max(v.DigitAt(place), 0)
		digits[i] = d
		top = max(top, d)
	}

	if top >= cap(count) {
		count = make([]int, top+1)
	} else {
		count = count[:top+1]
		clear(count)
	}

	for _, d := range digits {
		count[d]++
	}

	for d := 1; d < len(count); d++ {
		count[d] += count[d-1]
	}

	for i := len(data) - 1; i >= 0; i-- {
		d := digits[i]
		count[d]--
		temp[count[d]] = data[i]
		s.stats.Moves++
	}

	copy(data, temp)
	s.stats.Moves += len(data)

	return count
}
