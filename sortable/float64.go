package sortable

// Float64 is a sortable wrapper type for the built-in float64 type.
//
// NaN is not supported: it has no position in the ordering, and sorting a
// sequence containing it leaves the result unspecified (though in bounds).
type Float64 float64

var (
	_ Bucketer[Float64] = Float64(0)
	_ Digiter[Float64]  = Float64(0)
)

func (f Float64) Equals(other Float64) bool {
	return float64(f) == float64(other)
}

func (f Float64) LessThan(other Float64) bool {
	return float64(f) < float64(other)
}

// BucketCount returns ceil(sqrt(f)), with a minimum of 1.
func (f Float64) BucketCount() int {
	return numericBucketCount(float64(f))
}

// BucketIndex returns floor((f / maxValue) * (bucketCount - 1)).
func (f Float64) BucketIndex(bucketCount int, maxValue Float64) int {
	return linearIndex(float64(f), float64(maxValue), bucketCount)
}

// DigitAt returns the digit at place of |f| scaled by 10^FixedPointDigits.
func (f Float64) DigitAt(place int) int {
	return digitOf(scaled(float64(f)), place)
}

// DigitPlaces returns the digit count of |f| scaled by 10^FixedPointDigits.
func (f Float64) DigitPlaces() int {
	return digitCount(scaled(float64(f)))
}
