package sortable

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// String is a sortable wrapper type for strings that may represent numbers.
//
// Ordering: two numeric strings (see Numeric) compare by value, with the
// plain string comparison breaking ties such as "2" and "2.0". Numeric
// strings order before non-numeric ones, and non-numeric strings compare
// lexicographically.
//
// Bucketing groups strings by their first character rather than by a full
// key. Numeric-looking strings are normalized against NumericStringCeiling,
// and everything else goes to bucket (first rune mod bucketCount). The
// buckets themselves are therefore not in alphabetical order across the
// whole alphabet, only within a run of characters that do not wrap around
// the modulus.
//
// Digits: numeric strings behave exactly like Float64. Other strings use
// the character code of the rune at the given place counted from the end,
// so strings of different lengths are ordered right-aligned, which is not
// dictionary order.
type String string

var (
	_ Bucketer[String] = String("")
	_ Digiter[String]  = String("")
)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	a, aNum := s.Numeric()
	b, bNum := other.Numeric()

	switch {
	case aNum && bNum && a != b:
		return a < b
	case aNum != bNum:
		return aNum
	default:
		return string(s) < string(other)
	}
}

// Numeric returns the value of s if it parses as a finite real number.
func (s String) Numeric() (float64, bool) {
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

// BucketCount returns NumericStringBuckets for digit-led strings and
// AlphaBuckets for everything else.
func (s String) BucketCount() int {
	if s.startsWithDigit() {
		return NumericStringBuckets
	}

	return AlphaBuckets
}

// BucketIndex ignores maxValue. Digit-led strings that parse as a number
// map to floor((n / NumericStringCeiling) * (bucketCount - 1)); all other
// strings map to their first rune mod bucketCount.
func (s String) BucketIndex(bucketCount int, _ String) int {
	if s.startsWithDigit() {
		if n, ok := s.bucketValue(); ok {
			return linearIndex(n, NumericStringCeiling, bucketCount)
		}
	}

	r, size := utf8.DecodeRuneInString(string(s))
	if size == 0 || bucketCount < 1 {
		return 0
	}

	return int(r) % bucketCount
}

// DigitAt returns the scaled decimal digit for numeric strings, and the
// code of the place-th rune from the end (0 once past the start) otherwise.
func (s String) DigitAt(place int) int {
	if n, ok := s.Numeric(); ok {
		return digitOf(scaled(n), place)
	}

	rest := string(s)

	for ; len(rest) > 0; place-- {
		r, size := utf8.DecodeLastRuneInString(rest)
		if place == 0 {
			return int(r)
		}

		rest = rest[:len(rest)-size]
	}

	return 0
}

// DigitPlaces returns the scaled digit count for numeric strings and the
// rune count otherwise.
func (s String) DigitPlaces() int {
	if n, ok := s.Numeric(); ok {
		return digitCount(scaled(n))
	}

	return utf8.RuneCountInString(string(s))
}

func (s String) startsWithDigit() bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// bucketValue parses s as a real number, falling back to an unsigned integer.
func (s String) bucketValue() (float64, bool) {
	if f, err := strconv.ParseFloat(string(s), 64); err == nil {
		return f, true
	}

	if u, err := strconv.ParseUint(string(s), 10, 32); err == nil {
		return float64(u), true
	}

	return 0, false
}
