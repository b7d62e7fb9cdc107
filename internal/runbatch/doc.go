// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch runs drills as a tree of Runnables.
//
// A FunctionCommand wraps a single Go function. SerialBatch and ParallelBatch group
// Runnables and can be nested. Every Run returns Results, which keep the same tree
// shape and can be written as coloured text.
package runbatch
