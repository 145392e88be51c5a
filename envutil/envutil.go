// Package envutil reads typed configuration values from environment variables.
package envutil

import (
	"log/slog"
	"os"
	"time"

	"github.com/amp-labs/amp-sort/xform"
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// NewReader returns a Reader for the given raw data, for values that do not
// come from the process environment (flags, for instance).
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), xform.Bool), opts)
}

func Int[I xform.Intish](key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(get(key), xform.Int64), xform.CastNumeric[int64, I]), opts)
}

func Float64(key string, opts ...Option[float64]) Reader[float64] {
	return apply(Map(get(key), xform.Float64), opts)
}

func Duration(key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(key), xform.Duration), opts)
}

// SlogLevel returns a Reader for the given environment variable key.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(key), xform.TrimString), xform.ToLower), xform.SlogLevel), opts)
}

// IntList returns a Reader for a comma separated list of positive integers.
func IntList(key string, opts ...Option[[]int]) Reader[[]int] {
	return apply(Map(get(key), xform.IntList), opts)
}

// FilePath returns a Reader for a path that must name an existing regular file.
func FilePath(key string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(key), xform.FilePath), opts)
}

// Choice returns a Reader for a lower-cased value that must be one of choices.
func Choice(key string, choices []string, opts ...Option[string]) Reader[string] {
	return apply(Map(Map(Map(get(key), xform.TrimString), xform.ToLower), xform.OneOf(choices...)), opts)
}

// StringList returns a Reader for a comma separated list of trimmed, non-empty strings.
func StringList(key string, opts ...Option[[]string]) Reader[[]string] {
	return apply(Map(get(key), xform.SplitString(",")), opts)
}
