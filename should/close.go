// Package should holds cleanup helpers whose failures are logged rather than
// returned, for use in defer statements.
package should

import (
	"context"
	"io"

	"github.com/amp-labs/amp-sort/logger"
)

// Close closes closer and logs a failure at error level through the context
// logger. A nil closer is ignored.
//
//	defer should.Close(ctx, rc, "closing dataset")
func Close(ctx context.Context, closer io.Closer, msg string) {
	if closer == nil {
		return
	}

	if err := closer.Close(); err != nil {
		logger.Get(ctx).Error(msg, "err", err)
	}
}
