// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parallelsum

import "sync"

// accumulator is the total shared by all workers of one Sum call.
type accumulator struct {
	mu    sync.Mutex
	total uint64
}

func (a *accumulator) add(n uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.total += n
}

func (a *accumulator) value() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.total
}
