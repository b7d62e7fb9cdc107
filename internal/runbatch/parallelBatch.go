// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/matt-FFFFFF/kata/internal/ctxlog"
)

var _ Runnable = (*ParallelBatch)(nil)

// ParallelBatch runs all of its commands concurrently and waits for every one of them.
// Child results keep the order of Commands.
type ParallelBatch struct {
	*BaseCommand
	Commands []Runnable
}

// GetType implements Runnable.
func (b *ParallelBatch) GetType() string {
	return "ParallelBatch"
}

// Run implements Runnable.
func (b *ParallelBatch) Run(ctx context.Context) Results {
	logger := ctxlog.Logger(ctx).
		With("label", b.GetLabel()).
		With("runnableType", b.GetType())
	logger.Debug("starting parallel batch", "commands", len(b.Commands))

	started := time.Now()
	perCmd := make([]Results, len(b.Commands))
	wg := &sync.WaitGroup{}

	for i, cmd := range b.Commands {
		wg.Add(1)

		go func() {
			defer wg.Done()

			perCmd[i] = cmd.Run(ctx)
		}()
	}

	wg.Wait()

	return batchResult(b.GetLabel(), b.GetType(), slices.Concat(perCmd...), started)
}
