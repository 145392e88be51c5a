package sortable

// Int32 is a sortable wrapper type for the built-in int32 type.
// It implements both the Bucketer[Int32] and Digiter[Int32] interfaces.
//
// Digits are taken from the magnitude, so Int32 asks the radix engine for
// a sign correction pass (see SignCorrected).
//
// To convert back to a regular int32, use a type conversion:
//
//	var s sortable.Int32 = 42
//	regular := int32(s)
type Int32 int32

// Compile-time checks that Int32 implements the adapter interfaces.
var (
	_ Bucketer[Int32] = Int32(0)
	_ Digiter[Int32]  = Int32(0)
	_ SignCorrected   = Int32(0)
)

// Equals returns true if this Int32 has the same value as the other Int32.
func (i Int32) Equals(other Int32) bool {
	return int32(i) == int32(other)
}

// LessThan returns true if this Int32 is numerically less than the other Int32.
func (i Int32) LessThan(other Int32) bool {
	return int32(i) < int32(other)
}

// BucketCount returns ceil(sqrt(i)), with a minimum of 1.
func (i Int32) BucketCount() int {
	return numericBucketCount(float64(i))
}

// BucketIndex returns floor((i / maxValue) * (bucketCount - 1)).
func (i Int32) BucketIndex(bucketCount int, maxValue Int32) int {
	return linearIndex(float64(i), float64(maxValue), bucketCount)
}

// DigitAt returns (|i| / 10^place) mod 10.
func (i Int32) DigitAt(place int) int {
	return digitOf(i.magnitude(), place)
}

// DigitPlaces returns the number of decimal digits of |i|, 1 for zero.
func (i Int32) DigitPlaces() int {
	return digitCount(i.magnitude())
}

func (Int32) NeedsSignCorrection() bool {
	return true
}

// magnitude is computed in 64 bits so that |math.MinInt32| does not overflow.
func (i Int32) magnitude() uint64 {
	v := int64(i)
	if v < 0 {
		v = -v
	}

	return uint64(v)
}
