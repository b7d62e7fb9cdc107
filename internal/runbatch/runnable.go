// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import "context"

// Runnable is a single command or a batch of commands.
type Runnable interface {
	// Run executes the command or batch. It must return at least one Result.
	Run(context.Context) Results
	// GetLabel returns the label shown in results and logs.
	GetLabel() string
	// GetType returns the kind of runnable, e.g. "FunctionCommand" or "ParallelBatch".
	GetType() string
}

// BaseCommand holds the fields shared by every Runnable. Embed it.
type BaseCommand struct {
	Label string
}

// GetLabel returns the label, or "Command" when none is set.
func (c *BaseCommand) GetLabel() string {
	if c == nil || c.Label == "" {
		return "Command"
	}

	return c.Label
}
