// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/kata/internal/ctxlog"
)

// Watch reads sigCh until it is closed or ctx is done.
// The second signal of the same kind unsubscribes sigCh, closes it and calls cancel.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Warn(ctx, "watchdog", "detail", "second signal received, cancelling", "signal", sig.String())
				Stop(sigCh)
				close(sigCh)
				cancel()

				return
			}

			ctxlog.Warn(ctx, "watchdog", "detail", "signal received, send again to cancel", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
