package bench

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/amp-labs/amp-sort/compare"
	amperrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/zeebo/xxh3"
)

// Hasher maps an element to a 64 bit hash of its bit pattern.
type Hasher[T any] func(T) uint64

// HashFloat64 hashes the IEEE 754 bits of v.
func HashFloat64(v sortable.Float64) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(v)))

	return xxh3.Hash(buf[:])
}

// HashInt32 hashes the two's complement bits of v.
func HashInt32(v sortable.Int32) uint64 {
	var buf [4]byte

	binary.LittleEndian.PutUint32(buf[:], uint32(v)) //nolint:gosec

	return xxh3.Hash(buf[:])
}

// HashString hashes the bytes of v.
func HashString(v sortable.String) uint64 {
	return xxh3.HashString(string(v))
}

// Fingerprint is an order-independent digest of a multiset: the wrapping sum
// of the element hashes.
func Fingerprint[T any](values []T, hash Hasher[T]) uint64 {
	var sum uint64

	for _, v := range values {
		sum += hash(v)
	}

	return sum
}

// Verify checks that after is non-decreasing and holds the same multiset of
// elements as before.
func Verify[T compare.Lesser[T]](before, after []T, hash Hasher[T]) error {
	for i := 1; i < len(after); i++ {
		if after[i].LessThan(after[i-1]) {
			return fmt.Errorf("%w: descent at index %d", amperrors.ErrNotSorted, i)
		}
	}

	if len(before) != len(after) {
		return fmt.Errorf("%w: length %d became %d", amperrors.ErrNotPermutation, len(before), len(after))
	}

	if Fingerprint(before, hash) != Fingerprint(after, hash) {
		return fmt.Errorf("%w: fingerprint mismatch", amperrors.ErrNotPermutation)
	}

	return nil
}
