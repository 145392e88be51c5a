package compare

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNumber is a numeric type that implements Comparable and Lesser.
type testNumber int

func (n testNumber) Equals(other testNumber) bool {
	return int(n) == int(other)
}

func (n testNumber) LessThan(other testNumber) bool {
	return int(n) < int(other)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals[testNumber](testNumber(3), 3))
	assert.False(t, Equals[testNumber](testNumber(3), 4))
}

func TestCmp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        testNumber
		b        testNumber
		expected int
	}{
		{name: "less", a: 1, b: 2, expected: -1},
		{name: "greater", a: 5, b: 2, expected: 1},
		{name: "equal", a: 7, b: 7, expected: 0},
		{name: "negative", a: -3, b: 0, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Cmp(tt.a, tt.b))
		})
	}
}

func TestCounting(t *testing.T) {
	t.Parallel()

	t.Run("counts every call", func(t *testing.T) {
		t.Parallel()

		var count int

		data := []testNumber{5, 3, 9, 1, 4}
		slices.SortFunc(data, Counting[testNumber](&count))

		assert.Equal(t, []testNumber{1, 3, 4, 5, 9}, data)
		assert.Positive(t, count)
	})

	t.Run("nil counter", func(t *testing.T) {
		t.Parallel()

		data := []testNumber{2, 1}

		assert.NotPanics(t, func() {
			slices.SortFunc(data, Counting[testNumber](nil))
		})
		assert.Equal(t, []testNumber{1, 2}, data)
	})
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	t.Run("sorted input examines every pair", func(t *testing.T) {
		t.Parallel()

		var count int

		assert.True(t, IsSorted([]testNumber{1, 2, 2, 3}, &count))
		assert.Equal(t, 3, count)
	})

	t.Run("stops at first descent", func(t *testing.T) {
		t.Parallel()

		var count int

		assert.False(t, IsSorted([]testNumber{1, 0, 5, 4}, &count))
		assert.Equal(t, 1, count)
	})

	t.Run("empty and singleton", func(t *testing.T) {
		t.Parallel()

		var count int

		assert.True(t, IsSorted([]testNumber{}, &count))
		assert.True(t, IsSorted([]testNumber{42}, &count))
		assert.Zero(t, count)
	})
}

func TestMax(t *testing.T) {
	t.Parallel()

	_, ok := Max([]testNumber{})
	assert.False(t, ok)

	best, ok := Max([]testNumber{3, 11, -4, 11, 0})
	require.True(t, ok)
	assert.Equal(t, testNumber(11), best)
}
