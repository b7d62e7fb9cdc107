// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parallelsum

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/kata/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidWorkers is returned when the worker count is less than one.
var ErrInvalidWorkers = errors.New("worker count must be at least 1")

// Sum returns the sum of values computed by workers goroutines.
// values is read concurrently and must not be modified until Sum returns.
// ctx only supplies the logger; the workload is bounded and is not cancellable.
func Sum(ctx context.Context, values []uint64, workers int) (uint64, error) {
	if workers < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}

	logger := ctxlog.Logger(ctx).With("workers", workers, "values", len(values))
	acc := &accumulator{}

	var g errgroup.Group

	for offset := range workers {
		g.Go(func() error {
			partial := partialSum(values, offset, workers)
			logger.Debug("partial sum", "offset", offset, "sum", partial)
			acc.add(partial)

			return nil
		})
	}

	// workers never fail; Wait is the join barrier
	_ = g.Wait()

	total := acc.value()
	logger.Debug("sum of sums", "total", total)

	return total, nil
}

// partialSum adds values[offset], values[offset+stride], ...
func partialSum(values []uint64, offset, stride int) uint64 {
	var sum uint64

	for i := offset; i < len(values); i += stride {
		sum += values[i]
	}

	return sum
}

// Range returns 0, 1, ..., n-1. It returns an empty slice for n <= 0.
func Range(n int) []uint64 {
	if n <= 0 {
		return []uint64{}
	}

	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(i)
	}

	return values
}
