package dataset

import (
	"math"
	"strconv"

	"github.com/amp-labs/amp-sort/sortable"
)

// Float64s wraps values for the sort engines.
func Float64s(values []float64) []sortable.Float64 {
	out := make([]sortable.Float64, len(values))
	for i, v := range values {
		out[i] = sortable.Float64(v)
	}

	return out
}

// Int32s truncates values toward zero, saturating at the int32 range.
func Int32s(values []float64) []sortable.Int32 {
	out := make([]sortable.Int32, len(values))

	for i, v := range values {
		switch {
		case math.IsNaN(v):
			out[i] = 0
		case v >= math.MaxInt32:
			out[i] = math.MaxInt32
		case v <= math.MinInt32:
			out[i] = math.MinInt32
		default:
			out[i] = sortable.Int32(int32(v))
		}
	}

	return out
}

// Strings formats values with the fewest digits that round-trip.
func Strings(values []float64) []sortable.String {
	out := make([]sortable.String, len(values))
	for i, v := range values {
		out[i] = sortable.String(strconv.FormatFloat(v, 'f', -1, 64))
	}

	return out
}
