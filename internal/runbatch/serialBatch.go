// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"slices"
	"time"

	"github.com/matt-FFFFFF/kata/internal/ctxlog"
)

var _ Runnable = (*SerialBatch)(nil)

// SerialBatch runs its commands one after the other.
// Once the context is done the remaining commands are reported as skipped.
type SerialBatch struct {
	*BaseCommand
	Commands []Runnable
}

// GetType implements Runnable.
func (b *SerialBatch) GetType() string {
	return "SerialBatch"
}

// Run implements Runnable.
func (b *SerialBatch) Run(ctx context.Context) Results {
	logger := ctxlog.Logger(ctx).
		With("label", b.GetLabel()).
		With("runnableType", b.GetType())
	started := time.Now()
	children := make(Results, 0, len(b.Commands))

	for cmd := range slices.Values(b.Commands) {
		if err := ctx.Err(); err != nil {
			logger.Debug("skipping command after cancellation", "commandLabel", cmd.GetLabel())

			children = append(children, &Result{
				Label:  cmd.GetLabel(),
				Type:   cmd.GetType(),
				Status: ResultStatusSkipped,
				Error:  err,
			})

			continue
		}

		children = slices.Concat(children, cmd.Run(ctx))
	}

	return batchResult(b.GetLabel(), b.GetType(), children, started)
}
