package sortable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericBucketCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		max      float64
		expected int
	}{
		{name: "perfect square", max: 81, expected: 9},
		{name: "rounds up", max: 75, expected: 9},
		{name: "one", max: 1, expected: 1},
		{name: "fraction", max: 0.25, expected: 1},
		{name: "zero", max: 0, expected: 1},
		{name: "negative", max: -4, expected: 1},
		{name: "nan", max: math.NaN(), expected: 1},
		{name: "huge", max: 1e300, expected: MaxBuckets},
		{name: "infinite", max: math.Inf(1), expected: MaxBuckets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, numericBucketCount(tt.max))
		})
	}
}

func TestLinearIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		max      float64
		count    int
		expected int
	}{
		{name: "middle", value: 45, max: 90, count: 9, expected: 4},
		{name: "maximum", value: 90, max: 90, count: 9, expected: 8},
		{name: "minimum", value: 0, max: 90, count: 9, expected: 0},
		{name: "zero over zero", value: 0, max: 0, count: 1, expected: 0},
		{name: "negative value", value: -5, max: 10, count: 4, expected: -1},
		{name: "positive over zero", value: 3, max: 0, count: 4, expected: 4},
		{name: "above maximum", value: 2000, max: 1000, count: 50, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, linearIndex(tt.value, tt.max, tt.count))
		})
	}
}

func TestDigitHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, digitCount(0))
	assert.Equal(t, 1, digitCount(9))
	assert.Equal(t, 2, digitCount(10))
	assert.Equal(t, 4, digitCount(1000))
	assert.Equal(t, 20, digitCount(math.MaxUint64))

	assert.Equal(t, 5, digitOf(12345, 0))
	assert.Equal(t, 1, digitOf(12345, 4))
	assert.Equal(t, 0, digitOf(12345, 5))
	assert.Equal(t, 0, digitOf(12345, 25))
	assert.Equal(t, 0, digitOf(12345, -1))

	assert.Equal(t, uint64(64500000), scaled(64.5))
	assert.Equal(t, uint64(64500000), scaled(-64.5))
	assert.Equal(t, uint64(0), scaled(0.0000001))
	assert.Equal(t, uint64(math.MaxUint64), scaled(1e300))
	assert.Equal(t, uint64(0), scaled(math.NaN()))
}

func TestInt32(t *testing.T) {
	t.Parallel()

	assert.True(t, Int32(-3).LessThan(2))
	assert.False(t, Int32(2).LessThan(2))
	assert.True(t, Int32(7).Equals(7))

	assert.Equal(t, 9, Int32(75).BucketCount())
	assert.Equal(t, 1, Int32(0).BucketCount())
	assert.Equal(t, 1, Int32(-4).BucketCount())
	assert.Equal(t, 4, Int32(45).BucketIndex(9, 90))
	assert.Equal(t, 8, Int32(90).BucketIndex(9, 90))

	assert.Equal(t, 2, Int32(-802).DigitAt(0))
	assert.Equal(t, 0, Int32(-802).DigitAt(1))
	assert.Equal(t, 8, Int32(-802).DigitAt(2))
	assert.Equal(t, 0, Int32(-802).DigitAt(3))
	assert.Equal(t, 3, Int32(-802).DigitPlaces())
	assert.Equal(t, 1, Int32(0).DigitPlaces())
	assert.Equal(t, 4, Int32(1000).DigitPlaces())
	assert.Equal(t, 10, Int32(math.MinInt32).DigitPlaces())
	assert.Equal(t, 2, Int32(math.MinInt32).DigitAt(9))
}

func TestFloat64(t *testing.T) {
	t.Parallel()

	assert.True(t, Float64(11.1).LessThan(12.2))
	assert.True(t, Float64(34.0).Equals(34))

	assert.Equal(t, 10, Float64(90.0).BucketCount())
	assert.Equal(t, 1, Float64(11.1).BucketIndex(10, 90))
	assert.Equal(t, 9, Float64(90).BucketIndex(10, 90))

	assert.Equal(t, 8, Float64(64.5).DigitPlaces())
	assert.Equal(t, 4, Float64(64.5).DigitAt(6))
	assert.Equal(t, 6, Float64(64.5).DigitAt(7))
	assert.Equal(t, 5, Float64(64.5).DigitAt(5))
	assert.Equal(t, 1, Float64(0).DigitPlaces())
	assert.Equal(t, 1, Float64(0.0000001).DigitPlaces())
}

func TestStringOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        String
		b        String
		expected bool
	}{
		{name: "numeric by value", a: "9", b: "10", expected: true},
		{name: "numeric by value reversed", a: "10", b: "9", expected: false},
		{name: "numeric decimals", a: "2.4", b: "2.7", expected: true},
		{name: "equal value tie break", a: "2", b: "2.0", expected: true},
		{name: "numeric before words", a: "500", b: "ant", expected: true},
		{name: "words after numeric", a: "ant", b: "500", expected: false},
		{name: "lexicographic words", a: "ant", b: "bird", expected: true},
		{name: "infinity is a word", a: "9", b: "inf", expected: true},
		{name: "equal", a: "cat", b: "cat", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.LessThan(tt.b))
		})
	}
}

func TestStringBuckets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NumericStringBuckets, String("7").BucketCount())
	assert.Equal(t, AlphaBuckets, String("dog").BucketCount())
	assert.Equal(t, AlphaBuckets, String("").BucketCount())

	assert.Equal(t, 2, String("45").BucketIndex(NumericStringBuckets, ""))
	assert.Equal(t, 8, String("170").BucketIndex(NumericStringBuckets, ""))
	assert.Equal(t, 0, String("2.7").BucketIndex(NumericStringBuckets, ""))
	assert.Equal(t, NumericStringBuckets, String("2000").BucketIndex(NumericStringBuckets, ""))
	assert.Equal(t, int('d')%AlphaBuckets, String("dog").BucketIndex(AlphaBuckets, ""))
	assert.Equal(t, 0, String("").BucketIndex(AlphaBuckets, ""))
	assert.Equal(t, int('9')%NumericStringBuckets, String("9abc").BucketIndex(NumericStringBuckets, ""))
}

func TestStringDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int('c'), String("abc").DigitAt(0))
	assert.Equal(t, int('b'), String("abc").DigitAt(1))
	assert.Equal(t, int('a'), String("abc").DigitAt(2))
	assert.Equal(t, 0, String("abc").DigitAt(3))
	assert.Equal(t, 3, String("abc").DigitPlaces())
	assert.Equal(t, 5, String("héllo").DigitPlaces())
	assert.Equal(t, int('é'), String("héllo").DigitAt(3))
	assert.Equal(t, 0, String("").DigitPlaces())

	assert.Equal(t, 8, String("12.5").DigitPlaces())
	assert.Equal(t, 2, String("12.5").DigitAt(6))
	assert.Equal(t, 1, String("12.5").DigitAt(7))
	assert.Equal(t, 3, String("-3").DigitAt(6))
}

func TestNeedsSignCorrection(t *testing.T) {
	t.Parallel()

	assert.True(t, NeedsSignCorrection[Int32]())
	assert.False(t, NeedsSignCorrection[Float64]())
	assert.False(t, NeedsSignCorrection[String]())
}
