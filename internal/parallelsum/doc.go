// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parallelsum sums a sequence with a fixed number of workers.
//
// Worker k owns the indices k, k+n, k+2n, ... of the input (n being the worker count).
// Each worker sums its own indices locally and then adds that partial sum, once,
// into an accumulator guarded by a mutex. Sum returns only after every worker has
// finished, so the accumulator is never read while a worker may still write to it.
package parallelsum
