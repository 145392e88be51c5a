// Package dataset loads numeric columns from delimited text files.
//
// Files may be compressed (gzip, zstd, lz4 or brotli, chosen by extension)
// and in any charset chardet can recognize. The first row names the columns.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	amperrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/should"
)

// ctxCheckInterval is how many rows are read between context checks.
const ctxCheckInterval = 1024

type options struct {
	delimiter rune
	limit     int
	log       *slog.Logger
}

type Option func(*options)

// WithDelimiter sets the field separator. The default is a comma.
func WithDelimiter(d rune) Option {
	return func(o *options) {
		o.delimiter = d
	}
}

// WithLimit stops reading after n values have been collected. Zero or less
// means no limit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithLogger sets the logger used for load summaries.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(ctx context.Context, opts []Option) *options {
	o := &options{delimiter: ','}

	for _, opt := range opts {
		opt(o)
	}

	if o.log == nil {
		o.log = logger.Get(ctx)
	}

	return o
}

func (o *options) csvReader(r io.Reader) (*csv.Reader, string) {
	utf8Reader, cs := toUTF8(r)

	cr := csv.NewReader(utf8Reader)
	cr.Comma = o.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	return cr, cs
}

func readHeaders(cr *csv.Reader) ([]string, error) {
	row, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", amperrors.ErrEmptyDataset)
	}

	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	headers := make([]string, len(row))
	for i, h := range row {
		headers[i] = strings.TrimSpace(h)
	}

	return headers, nil
}

// Headers returns the column names of the file at path.
func Headers(ctx context.Context, path string, opts ...Option) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer should.Close(ctx, rc, "closing dataset")

	cr, _ := newOptions(ctx, opts).csvReader(rc)

	return readHeaders(cr)
}

// LoadColumn reads the numeric values of one column of the file at path.
func LoadColumn(ctx context.Context, path, column string, opts ...Option) ([]float64, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer should.Close(ctx, rc, "closing dataset")

	values, err := ReadColumn(logger.With(ctx, "file", path), rc, column, opts...)
	if err != nil {
		return nil, logger.AnnotateError(err, "file", path)
	}

	return values, nil
}

// ReadColumn reads the numeric values of the named column from r. Each cell
// is parsed as a 32-bit integer first and as a float otherwise; cells that
// are neither, or are not finite, are skipped. Short rows are skipped too.
func ReadColumn(ctx context.Context, r io.Reader, column string, opts ...Option) ([]float64, error) {
	o := newOptions(ctx, opts)
	cr, cs := o.csvReader(r)

	headers, err := readHeaders(cr)
	if err != nil {
		return nil, err
	}

	idx := slices.Index(headers, column)
	if idx < 0 {
		return nil, logger.AnnotateError(
			fmt.Errorf("%w: %q", amperrors.ErrColumnNotFound, column),
			"column", column, "headers", headers)
	}

	var (
		values  []float64
		skipped int
		rows    int
	)

	for {
		if o.limit > 0 && len(values) >= o.limit {
			break
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, logger.AnnotateError(fmt.Errorf("reading row: %w", err), "row", rows+1)
		}

		rows++

		if rows%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if idx >= len(row) {
			skipped++

			continue
		}

		v, ok := parseCell(row[idx])
		if !ok {
			skipped++

			continue
		}

		values = append(values, v)
	}

	o.log.Debug("loaded column",
		"column", column,
		"charset", cs,
		"rows", rows,
		"values", len(values),
		"skipped", skipped)

	return values, nil
}

// parseCell parses a trimmed cell as an int32, falling back to float64.
func parseCell(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}

	if n, err := strconv.ParseInt(cell, 10, 32); err == nil {
		return float64(n), true
	}

	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
