// Command sortbench benchmarks the bucket and radix sort engines on a column
// of a CSV dataset, and sorts literal values from the command line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/shutdown"
)

const appName = "sortbench"

func main() {
	ctx, stop := shutdown.SetupHandler(context.Background())

	err := newRootCommand().ExecuteContext(ctx)

	if hookErr := shutdown.RunHooks(ctx); hookErr != nil {
		logger.Get(ctx).Error("shutdown hooks failed", "err", hookErr)
	}

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
