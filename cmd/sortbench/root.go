package main

import (
	"fmt"

	"github.com/amp-labs/amp-sort/build"
	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/shutdown"
	"github.com/amp-labs/amp-sort/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Benchmark instrumented bucket and radix sorts",
		Long: `sortbench loads a numeric column from a CSV file (optionally gzip, zstd,
lz4 or brotli compressed) and times the bucket and radix sort engines on
prefixes of it, reporting wall time, comparisons and moves.

Every flag can also be set with a SORTBENCH_* environment variable; flags win.`,
		Version:           build.Current().String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runBench,
	}

	addBenchFlags(root.Flags())
	root.AddCommand(newSortCommand())

	return root
}

// setup configures logging and telemetry. Exporters are flushed by a
// shutdown hook.
func setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	otelConfig, err := telemetry.LoadConfigFromEnv(
		envutil.String("SORTBENCH_ENVIRONMENT", envutil.Default("local")).ValueOrElse("local"))
	if err != nil {
		return fmt.Errorf("telemetry config: %w", err)
	}

	if otelConfig.ServiceName == "" {
		otelConfig.ServiceName = appName
	}

	if !envutil.String("OTEL_SERVICE_VERSION").HasValue() {
		otelConfig.ServiceVersion = build.Current().String()
	}

	logOpts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}

	otelHandler, err := telemetry.LogHandler(ctx, otelConfig)
	if err != nil {
		return err
	}

	if otelHandler != nil {
		logOpts = append(logOpts, logger.WithExtraHandler(otelHandler))
	}

	if _, err := logger.ConfigureLogging(appName, logOpts...); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := telemetry.Initialize(ctx, otelConfig); err != nil {
		return err
	}

	shutdown.BeforeShutdown("telemetry", telemetry.Shutdown)

	return nil
}

// fromEnv returns the flag value when the flag was given, otherwise the
// environment value when one is set, otherwise the flag default.
func fromEnv[T any](flags *pflag.FlagSet, name string, flagValue T, env envutil.Reader[T]) (T, error) {
	if flags.Changed(name) || (!env.HasValue() && !env.HasError()) {
		return flagValue, nil
	}

	val, err := env.Value()
	if err != nil {
		return val, fmt.Errorf("--%s: %w", name, err)
	}

	return val, nil
}
