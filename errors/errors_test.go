package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("empty collection has no error", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrNotSorted)

		assert.Equal(t, 1, c.Len())
		assert.Equal(t, ErrNotSorted, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("%w: bucket/100", ErrNotSorted))
		c.Add(nil)
		c.Add(fmt.Errorf("%w: radix/100", ErrNotPermutation))

		err := c.GetError()
		require.Error(t, err)
		assert.Equal(t, 2, c.Len())
		assert.ErrorIs(t, err, ErrNotSorted)
		assert.ErrorIs(t, err, ErrNotPermutation)
		assert.False(t, errors.Is(err, ErrEmptyDataset))
	})

	t.Run("clear resets", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrUnknownFormat)
		c.Clear()

		assert.False(t, c.HasError())
		assert.NoError(t, c.GetError())
	})
}
