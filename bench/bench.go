// Package bench times the sort engines against a dataset column and checks
// their output.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-sort/bucketsort"
	amperrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/radixsort"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/amp-labs/amp-sort/stats"
	"github.com/amp-labs/amp-sort/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

// Algorithm names a sort engine.
type Algorithm string

const (
	Bucket Algorithm = "bucket"
	Radix  Algorithm = "radix"
)

// Algorithms lists every engine, in report order.
var Algorithms = []Algorithm{Bucket, Radix} //nolint:gochecknoglobals

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Algorithms, alg) {
		return "", fmt.Errorf("%w: %q", amperrors.ErrUnknownAlgorithm, name)
	}

	return alg, nil
}

// Engine is the part of a sorter the harness drives.
type Engine[T any] interface {
	Sort(data []T)
	Stats() stats.Stats
}

// NewEngine builds the named engine for T.
func NewEngine[T interface {
	sortable.Bucketer[T]
	sortable.Digiter[T]
}](alg Algorithm, log *slog.Logger) (Engine[T], error) { //nolint:ireturn
	switch alg {
	case Bucket:
		return bucketsort.New[T](bucketsort.WithLogger(log)), nil
	case Radix:
		return radixsort.New[T](radixsort.WithLogger(log)), nil
	default:
		return nil, fmt.Errorf("%w: %q", amperrors.ErrUnknownAlgorithm, alg)
	}
}

// Config controls a benchmark run.
type Config struct {
	// Sizes are the prefix lengths of the data to sort. Sizes larger than
	// the data are truncated to it.
	Sizes []int
	// Iterations per case; each iteration sorts a fresh copy.
	Iterations int
	// Parallelism is the number of cases run at once.
	Parallelism int
	// Verify checks every result for order and completeness.
	Verify bool
	// Algorithms to run. Empty means all.
	Algorithms []Algorithm
}

func (c Config) normalized() Config {
	c.Iterations = max(c.Iterations, 1)
	c.Parallelism = max(c.Parallelism, 1)

	if len(c.Algorithms) == 0 {
		c.Algorithms = Algorithms
	}

	return c
}

type benchCase struct {
	alg       Algorithm
	requested int
	size      int
}

// Run benchmarks every configured algorithm on every size and returns the
// report. Results are ordered by size, then algorithm. Cases run on a
// worker pool; the first failing case cancels the rest.
func Run(ctx context.Context, cfg Config, data []sortable.Float64) (*Report, error) {
	cfg = cfg.normalized()

	if len(data) == 0 {
		return nil, amperrors.ErrEmptyDataset
	}

	var cases []benchCase

	for _, size := range cfg.Sizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: size %d", amperrors.ErrEmptyDataset, size)
		}

		for _, alg := range cfg.Algorithms {
			if _, err := ParseAlgorithm(string(alg)); err != nil {
				return nil, err
			}

			cases = append(cases, benchCase{alg: alg, requested: size, size: min(size, len(data))})
		}
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now().UTC(),
		Results: make([]Result, len(cases)),
	}

	ctx = logger.With(ctx, "run_id", report.RunID)
	log := logger.Get(ctx)

	ctx, span := telemetry.Tracer().Start(ctx, "bench.Run", trace.WithAttributes(
		attribute.String("run_id", report.RunID),
		attribute.Int("cases", len(cases)),
	))
	defer span.End()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := pond.NewPool(cfg.Parallelism, pond.WithContext(runCtx))
	defer pool.StopAndWait()

	completed := atomic.NewInt64(0)
	tasks := make([]pond.Task, len(cases))

	for i, c := range cases {
		tasks[i] = pool.SubmitErr(func() error {
			res, err := runCase(runCtx, cfg, c, data)
			if err != nil {
				cancel()

				return err
			}

			res.RunID = report.RunID
			report.Results[i] = res

			log.Debug("benchmark case complete",
				"algorithm", c.alg,
				"size", c.size,
				"done", completed.Inc(),
				"total", len(cases))

			return nil
		})
	}

	var errs amperrors.Collection

	for _, task := range tasks {
		errs.Add(task.Wait())
	}

	if errs.HasError() {
		err := errs.GetError()

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	report.Elapsed = time.Since(report.Started)

	log.Info("benchmark finished", "cases", len(cases), "elapsed", report.Elapsed)

	return report, nil
}

func runCase(ctx context.Context, cfg Config, c benchCase, data []sortable.Float64) (Result, error) {
	label := string(c.alg)

	ctx, span := telemetry.Tracer().Start(ctx, "bench.case", trace.WithAttributes(
		attribute.String("algorithm", label),
		attribute.Int("size", c.size),
		attribute.Int("iterations", cfg.Iterations),
	))
	defer span.End()

	engine, err := NewEngine[sortable.Float64](c.alg, logger.Get(ctx))
	if err != nil {
		return Result{}, err
	}

	input := data[:c.size]
	work := make([]sortable.Float64, c.size)

	res := Result{
		Algorithm:  c.alg,
		Requested:  c.requested,
		Size:       c.size,
		Iterations: cfg.Iterations,
	}

	var total time.Duration

	for i := range cfg.Iterations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		copy(work, input)

		start := time.Now()
		engine.Sort(work)
		elapsed := time.Since(start)

		st := engine.Stats()

		sortRuns.WithLabelValues(label).Inc()
		sortDuration.WithLabelValues(label).Observe(elapsed.Seconds())
		sortComparisons.WithLabelValues(label).Add(float64(st.Comparisons))
		sortMoves.WithLabelValues(label).Add(float64(st.Moves))

		total += elapsed

		if i == 0 || elapsed < res.Min {
			res.Min = elapsed
		}

		res.Max = max(res.Max, elapsed)
		res.Stats = st
	}

	res.Mean = total / time.Duration(cfg.Iterations)

	if cfg.Verify {
		if err := Verify(input, work, HashFloat64); err != nil {
			verificationFailures.WithLabelValues(label).Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return Result{}, logger.AnnotateError(err, "algorithm", label, "size", c.size)
		}

		res.Verified = true
	}

	span.SetAttributes(
		attribute.Int("comparisons", res.Stats.Comparisons),
		attribute.Int("moves", res.Stats.Moves),
	)

	return res, nil
}
