// Package xform provides small parse-and-validate functions with the
// (value) -> (value, error) shape used by envutil readers and CLI flags.
package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// SplitString returns a transformer that splits a string by the given separator.
// Each part is trimmed and empty parts are dropped.
func SplitString(sep string) func(string) ([]string, error) {
	return func(s string) ([]string, error) {
		var out []string

		for _, part := range strings.Split(s, sep) {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}

		return out, nil
	}
}

// OneOf returns a transformer that validates a value is one of the allowed choices.
// Returns ErrInvalidChoice if the value doesn't match any of the choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrInvalidChoice, value, choices)
	}
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Int64 parses a string as a base-10 int64.
func Int64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// Float64 parses a string as a float64.
func Float64(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

// Positive validates that a numeric value is greater than zero.
// Returns ErrNonPositive if the value is less than or equal to zero.
func Positive[A Numeric](value A) (A, error) { //nolint:ireturn
	if value <= 0 {
		return value, fmt.Errorf("%w: %v", ErrNonPositive, value)
	}

	return value, nil
}

// CastNumeric converts a numeric value from one type to another.
// Example: CastNumeric[int64, int32] converts int64 to int32.
// Note: This may truncate or lose precision depending on the types involved.
func CastNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

// IntList parses a comma separated list of positive integers, such as
// "100,500,1000". Returns ErrEmptyList if no values are present.
func IntList(value string) ([]int, error) {
	parts, _ := SplitString(",")(value)
	if len(parts) == 0 {
		return nil, ErrEmptyList
	}

	out := make([]int, 0, len(parts))

	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}

		if _, err := Positive(n); err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	return out, nil
}

// FilePath validates that value names an existing regular file.
func FilePath(value string) (string, error) {
	stat, err := os.Stat(value)
	if err != nil {
		return value, err
	}

	if stat.IsDir() {
		return value, fmt.Errorf("%w: %s", ErrNotAFile, value)
	}

	return value, nil
}

// Duration parses a string as a time.Duration.
// Accepts formats like "1h30m", "5s", "100ms", etc. as defined by time.ParseDuration.
func Duration(value string) (time.Duration, error) {
	return time.ParseDuration(value)
}

// ErrInvalidLogLevel is returned when a log level string is not recognized.
var ErrInvalidLogLevel = errors.New("invalid log level")

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive).
// Returns ErrInvalidLogLevel for unrecognized values.
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
