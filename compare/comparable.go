// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Lesser is implemented by types that define a strict ordering over themselves.
type Lesser[T any] interface {
	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Cmp returns a three-way comparison of a and b derived from LessThan:
// -1 if a < b, +1 if b < a, and 0 otherwise.
func Cmp[T Lesser[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Counting returns a comparison function suitable for slices.SortFunc which
// increments *count once per invocation. A nil count disables counting.
func Counting[T Lesser[T]](count *int) func(a, b T) int {
	return func(a, b T) int {
		if count != nil {
			*count++
		}

		return Cmp(a, b)
	}
}

// IsSorted reports whether data is non-decreasing. It stops at the first
// descent and adds the number of adjacent pairs it examined to *count.
func IsSorted[T Lesser[T]](data []T, count *int) bool {
	for i := 1; i < len(data); i++ {
		if count != nil {
			*count++
		}

		if data[i].LessThan(data[i-1]) {
			return false
		}
	}

	return true
}

// Max returns a maximal element of data. Ties are resolved in favor of the
// first maximal element seen. It returns false if data is empty.
func Max[T Lesser[T]](data []T) (T, bool) {
	var zero T

	if len(data) == 0 {
		return zero, false
	}

	best := data[0]

	for _, v := range data[1:] {
		if best.LessThan(v) {
			best = v
		}
	}

	return best, true
}
