package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amp-labs/amp-sort/bench"
	"github.com/amp-labs/amp-sort/cli"
	"github.com/amp-labs/amp-sort/dataset"
	"github.com/amp-labs/amp-sort/envutil"
	amperrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/xform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultFile   = "Hotel_Item_Inventory_Dataset.csv"
	defaultColumn = "Purchase_Price"
)

type benchSettings struct {
	file        string
	column      string
	sizes       []int
	iterations  int
	parallelism int
	format      string
	verify      bool
	algorithms  []string
	limit       int
}

func addBenchFlags(flags *pflag.FlagSet) {
	flags.StringP("file", "f", defaultFile, "CSV dataset to load (env SORTBENCH_FILE)")
	flags.StringP("column", "c", defaultColumn,
		"column to sort; empty prompts when attached to a terminal (env SORTBENCH_COLUMN)")
	flags.IntSlice("sizes", []int{100, 500, 1000}, "prefix sizes to benchmark (env SORTBENCH_SIZES)")
	flags.IntP("iterations", "n", 10, "sorts per case (env SORTBENCH_ITERATIONS)")
	flags.IntP("parallelism", "p", 1, "cases run at once (env SORTBENCH_PARALLELISM)")
	flags.StringP("format", "o", string(bench.Text),
		"report format: "+strings.Join(bench.Formats, "|")+" (env SORTBENCH_FORMAT)")
	flags.Bool("verify", false, "check every result is a sorted permutation (env SORTBENCH_VERIFY)")
	flags.StringSlice("algorithms", nil, "algorithms to run, default all (env SORTBENCH_ALGORITHMS)")
	flags.Int("limit", 0, "stop loading after this many values, 0 for all (env SORTBENCH_LIMIT)")
}

func positive(i int) error {
	_, err := xform.Positive(i)

	return err
}

func resolveBenchSettings(flags *pflag.FlagSet) (benchSettings, error) { //nolint:cyclop,funlen
	var (
		s    benchSettings
		errs amperrors.Collection
		err  error
	)

	file, _ := flags.GetString("file")
	s.file, err = fromEnv(flags, "file", file, envutil.String("SORTBENCH_FILE"))
	errs.Add(err)

	column, _ := flags.GetString("column")
	s.column, err = fromEnv(flags, "column", column, envutil.String("SORTBENCH_COLUMN"))
	errs.Add(err)

	sizes, _ := flags.GetIntSlice("sizes")
	s.sizes, err = fromEnv(flags, "sizes", sizes, envutil.IntList("SORTBENCH_SIZES"))
	errs.Add(err)

	iterations, _ := flags.GetInt("iterations")
	s.iterations, err = fromEnv(flags, "iterations", iterations,
		envutil.Int[int]("SORTBENCH_ITERATIONS", envutil.Validate(positive)))
	errs.Add(err)

	parallelism, _ := flags.GetInt("parallelism")
	s.parallelism, err = fromEnv(flags, "parallelism", parallelism,
		envutil.Int[int]("SORTBENCH_PARALLELISM", envutil.Validate(positive)))
	errs.Add(err)

	format, _ := flags.GetString("format")
	s.format, err = fromEnv(flags, "format", format, envutil.Choice("SORTBENCH_FORMAT", bench.Formats))
	errs.Add(err)

	verify, _ := flags.GetBool("verify")
	s.verify, err = fromEnv(flags, "verify", verify, envutil.Bool("SORTBENCH_VERIFY"))
	errs.Add(err)

	algorithms, _ := flags.GetStringSlice("algorithms")
	s.algorithms, err = fromEnv(flags, "algorithms", algorithms, envutil.StringList("SORTBENCH_ALGORITHMS"))
	errs.Add(err)

	limit, _ := flags.GetInt("limit")
	s.limit, err = fromEnv(flags, "limit", limit, envutil.Int[int]("SORTBENCH_LIMIT"))
	errs.Add(err)

	return s, errs.GetError()
}

func runBench(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	s, err := resolveBenchSettings(cmd.Flags())
	if err != nil {
		return err
	}

	format, err := bench.ParseFormat(s.format)
	if err != nil {
		return err
	}

	algorithms := make([]bench.Algorithm, 0, len(s.algorithms))

	for _, name := range s.algorithms {
		alg, err := bench.ParseAlgorithm(name)
		if err != nil {
			return err
		}

		algorithms = append(algorithms, alg)
	}

	if s.column == "" {
		if !cli.IsInteractive(os.Stdin) {
			return fmt.Errorf("%w: no column given", amperrors.ErrColumnNotFound)
		}

		headers, err := dataset.Headers(ctx, s.file)
		if err != nil {
			return err
		}

		if s.column, err = cli.SelectColumn("Column", headers); err != nil {
			return err
		}
	}

	ctx = logger.With(ctx, "file", filepath.Base(s.file), "column", s.column)

	values, err := dataset.LoadColumn(ctx, s.file, s.column, dataset.WithLimit(s.limit))
	if err != nil {
		return err
	}

	logger.Get(ctx).Info("dataset loaded", "values", len(values))

	report, err := bench.Run(ctx, bench.Config{
		Sizes:       s.sizes,
		Iterations:  s.iterations,
		Parallelism: s.parallelism,
		Verify:      s.verify,
		Algorithms:  algorithms,
	}, dataset.Float64s(values))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if format == bench.Text {
		title := fmt.Sprintf("%s · %s · %d values", filepath.Base(s.file), s.column, len(values))
		if _, err := fmt.Fprint(out, cli.BannerAutoWidth(title, cli.AlignCenter)); err != nil {
			return err
		}
	}

	return report.Render(out, format)
}
