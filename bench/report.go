package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	amperrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/stats"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Format selects how a Report is rendered.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// Formats lists the supported output formats.
var Formats = []string{string(Text), string(YAML), string(JSON)} //nolint:gochecknoglobals

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case Text, YAML, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", amperrors.ErrUnknownFormat, name)
	}
}

// Result is the outcome of one algorithm on one size.
type Result struct {
	RunID      string        `json:"run_id"     yaml:"run_id"`
	Algorithm  Algorithm     `json:"algorithm"  yaml:"algorithm"`
	Requested  int           `json:"requested"  yaml:"requested"`
	Size       int           `json:"size"       yaml:"size"`
	Iterations int           `json:"iterations" yaml:"iterations"`
	Min        time.Duration `json:"min_ns"     yaml:"min"`
	Mean       time.Duration `json:"mean_ns"    yaml:"mean"`
	Max        time.Duration `json:"max_ns"     yaml:"max"`
	Stats      stats.Stats   `json:"stats"      yaml:"stats"`
	Verified   bool          `json:"verified"   yaml:"verified"`
}

// Report collects the results of a benchmark run.
type Report struct {
	RunID   string        `json:"run_id"     yaml:"run_id"`
	Started time.Time     `json:"started"    yaml:"started"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed"`
	Results []Result      `json:"results"    yaml:"results"`
}

// Render writes the report to w in the given format.
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case Text:
		return r.renderText(w)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	default:
		return fmt.Errorf("%w: %q", amperrors.ErrUnknownFormat, format)
	}
}

func (r *Report) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run %s (%s)\n", r.RunID, FormatDuration(r.Elapsed)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Size", "Iterations", "Min", "Mean", "Max", "Comparisons", "Moves"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, res := range r.Results {
		table.Append([]string{
			string(res.Algorithm),
			humanize.Comma(int64(res.Size)),
			strconv.Itoa(res.Iterations),
			FormatDuration(res.Min),
			FormatDuration(res.Mean),
			FormatDuration(res.Max),
			humanize.Comma(int64(res.Stats.Comparisons)),
			humanize.Comma(int64(res.Stats.Moves)),
		})
	}

	table.Render()

	return nil
}

// FormatDuration renders d with an SI prefix and at most two decimals.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0 s"
	}

	return humanize.SIWithDigits(d.Seconds(), 2, "s")
}
