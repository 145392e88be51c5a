// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"math"

	"github.com/amp-labs/amp-sort/compare"
)

const (
	// Radix is the base digits are extracted in.
	Radix = 10

	// FixedPointDigits is the number of fractional decimal digits kept when
	// a floating point value is scaled to an integer for digit extraction.
	// Values that differ only beyond this precision share every digit.
	FixedPointDigits = 6

	// NumericStringCeiling is the fixed normalization ceiling used to place
	// numeric strings into buckets. Larger values land in the last bucket.
	NumericStringCeiling = 1000.0

	// NumericStringBuckets is the bucket count used when the maximum string is numeric.
	NumericStringBuckets = 50

	// AlphaBuckets is the bucket count used when the maximum string is not numeric.
	AlphaBuckets = 26

	// MaxBuckets caps the bucket count derived from a numeric maximum, so that
	// huge floating point maxima do not allocate an unbounded bucket table.
	MaxBuckets = 1 << 16
)

// fixedPointScale is 10^FixedPointDigits.
var fixedPointScale = math.Pow10(FixedPointDigits) //nolint:gochecknoglobals

// pow10 holds every power of ten representable in a uint64.
var pow10 = func() [20]uint64 { //nolint:gochecknoglobals
	var table [20]uint64

	table[0] = 1
	for i := 1; i < len(table); i++ {
		table[i] = table[i-1] * Radix
	}

	return table
}()

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Bucketer is the capability the bucket sort engine needs from an element type.
type Bucketer[T any] interface {
	Sortable[T]

	// BucketCount returns the number of buckets to use when this value is
	// the maximum of the set being sorted.
	BucketCount() int

	// BucketIndex maps the value to a bucket, given the bucket count and the
	// maximum value in the set. Callers must clamp the result into
	// [0, bucketCount), since some inputs (a zero maximum, out-of-range
	// numeric strings) map outside of it.
	BucketIndex(bucketCount int, maxValue T) int
}

// Digiter is the capability the radix sort engine needs from an element type.
type Digiter[T any] interface {
	Sortable[T]

	// DigitAt returns the digit at the given place, 0 being the least significant.
	DigitAt(place int) int

	// DigitPlaces returns the number of digit places the value occupies.
	DigitPlaces() int
}

// SignCorrected is implemented by types whose digits are extracted from the
// magnitude only. Sequences of such types need a final comparison pass after
// the digit passes to put negative values in front of positive ones.
type SignCorrected interface {
	NeedsSignCorrection() bool
}

// NeedsSignCorrection reports whether T asks for the post-pass sign correction.
func NeedsSignCorrection[T any]() bool {
	var zero T

	sc, ok := any(zero).(SignCorrected)

	return ok && sc.NeedsSignCorrection()
}

// numericBucketCount is ceil(sqrt(maxValue)), at least 1 and at most MaxBuckets.
func numericBucketCount(maxValue float64) int {
	count := math.Ceil(math.Sqrt(maxValue))

	switch {
	case math.IsNaN(count), count < 1:
		return 1
	case count > MaxBuckets:
		return MaxBuckets
	default:
		return int(count)
	}
}

// linearIndex is floor((value / maxValue) * (bucketCount - 1)). Undefined
// results (NaN) map to 0, and anything outside [0, bucketCount) is reported
// as -1 or bucketCount so the caller can clamp it.
func linearIndex(value, maxValue float64, bucketCount int) int {
	idx := math.Floor((value / maxValue) * float64(bucketCount-1))

	switch {
	case math.IsNaN(idx):
		return 0
	case idx < 0:
		return -1
	case idx >= float64(bucketCount):
		return bucketCount
	default:
		return int(idx)
	}
}

// digitOf returns the decimal digit of u at the given place.
func digitOf(u uint64, place int) int {
	if place < 0 || place >= len(pow10) {
		return 0
	}

	return int((u / pow10[place]) % Radix)
}

// digitCount returns the number of decimal digits of u, 1 for zero.
func digitCount(u uint64) int {
	n := 1

	for u >= Radix {
		u /= Radix
		n++
	}

	return n
}

// scaled converts |f| to a fixed-point integer with FixedPointDigits
// fractional digits, truncating the rest. Values too large for a uint64
// saturate.
func scaled(f float64) uint64 {
	s := math.Abs(f) * fixedPointScale

	switch {
	case math.IsNaN(s):
		return 0
	case s >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(s)
	}
}
