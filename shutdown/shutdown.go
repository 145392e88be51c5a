// Package shutdown runs cleanup hooks when the process is interrupted or
// when the command finishes normally.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/amp-labs/amp-sort/logger"
)

// HookTimeout bounds the time all hooks together may take.
const HookTimeout = 10 * time.Second

// Hook is a cleanup function. It receives a context that outlives the
// canceled top-level context but expires after HookTimeout.
type Hook func(ctx context.Context) error

type namedHook struct {
	name string
	fn   Hook
}

var (
	mut     sync.Mutex     //nolint:gochecknoglobals
	hooks   []namedHook    //nolint:gochecknoglobals
	channel chan os.Signal //nolint:gochecknoglobals
)

// BeforeShutdown registers a hook. Hooks run in reverse registration order,
// so something registered after its dependencies is torn down first.
func BeforeShutdown(name string, h Hook) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, namedHook{name: name, fn: h})
}

// Shutdown triggers the signal path programmatically. It is a no-op when
// SetupHandler has not been called.
func Shutdown() {
	mut.Lock()
	ch := channel
	mut.Unlock()

	if ch != nil {
		select {
		case ch <- os.Interrupt:
		default:
		}
	}
}

// SetupHandler listens for SIGINT and SIGTERM and returns a context that is
// canceled when one arrives. Registered hooks run before cancellation. The
// returned stop function releases the signal handler.
func SetupHandler(parent context.Context) (context.Context, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	mut.Lock()
	channel = ch
	mut.Unlock()

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-ch:
			logger.Get(ctx).Warn("Received "+sig.String()+", shutting down...", "signal", sig.String())

			if err := RunHooks(ctx); err != nil {
				logger.Get(ctx).Error("shutdown hooks failed", "err", err)
			}

			cancel()
		case <-done:
		}
	}()

	var once sync.Once

	stop := func() {
		once.Do(func() {
			signal.Stop(ch)

			mut.Lock()
			if channel == ch {
				channel = nil
			}
			mut.Unlock()

			close(done)
			cancel()
		})
	}

	return ctx, stop
}

// RunHooks runs and clears every registered hook, newest first. Failures are
// collected; every hook runs regardless.
func RunHooks(ctx context.Context) error {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), HookTimeout)
	defer cancel()

	var errs []error

	for i := len(pending) - 1; i >= 0; i-- {
		h := pending[i]

		if err := h.fn(hookCtx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", h.name, err))
		}
	}

	return errors.Join(errs...)
}
