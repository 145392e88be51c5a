// Package stats holds the instrumentation counters shared by the sorting engines.
package stats

import (
	"fmt"
	"log/slog"
)

// Stats counts the work performed by a single sort invocation.
// It is owned by one engine instance and is not safe for concurrent use.
type Stats struct {
	// Comparisons is the number of pairwise comparisons performed.
	Comparisons int `json:"comparisons" yaml:"comparisons"`

	// Moves is the number of element relocations performed.
	Moves int `json:"moves" yaml:"moves"`
}

// Reset zeroes both counters.
func (s *Stats) Reset() {
	*s = Stats{}
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Comparisons += other.Comparisons
	s.Moves += other.Moves
}

// IsZero returns true if no work has been recorded.
func (s Stats) IsZero() bool {
	return s.Comparisons == 0 && s.Moves == 0
}

func (s Stats) String() string {
	return fmt.Sprintf("comparisons=%d moves=%d", s.Comparisons, s.Moves)
}

// LogValue lets Stats be passed directly as a slog attribute.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("comparisons", s.Comparisons),
		slog.Int("moves", s.Moves))
}

// Compile-time check that Stats implements slog.LogValuer.
var _ slog.LogValuer = Stats{}
