// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/kata/internal/ctxlog"
)

var _ Runnable = (*FunctionCommand)(nil)

// ErrFunctionCmdPanic is returned when the function of a FunctionCommand panics.
type ErrFunctionCmdPanic struct {
	v any
}

// NewErrFunctionCmdPanic wraps the value recovered from a panic.
func NewErrFunctionCmdPanic(v any) error {
	return &ErrFunctionCmdPanic{v: v}
}

// Error implements the error interface.
func (e *ErrFunctionCmdPanic) Error() string {
	return fmt.Sprintf("function command panic: %v", e.v)
}

// Unwrap returns the panic value when it was an error.
func (e *ErrFunctionCmdPanic) Unwrap() error {
	err, _ := e.v.(error)
	return err
}

// FunctionCommandFunc is the function run by a FunctionCommand.
type FunctionCommandFunc func(ctx context.Context) FunctionCommandReturn

// FunctionCommandReturn is what a FunctionCommandFunc reports back.
type FunctionCommandReturn struct {
	Output string // Shown in the results
	Err    error
}

// FunctionCommand runs a Go function as a Runnable.
// A panic in the function is converted to an ErrFunctionCmdPanic, and a cancelled
// context ends the command without waiting for the function to return.
type FunctionCommand struct {
	*BaseCommand
	Func FunctionCommandFunc
}

// GetType implements Runnable.
func (f *FunctionCommand) GetType() string {
	return "FunctionCommand"
}

// Run implements Runnable.
func (f *FunctionCommand) Run(ctx context.Context) Results {
	label := f.GetLabel()
	logger := ctxlog.Logger(ctx).
		With("runnableType", f.GetType()).
		With("label", label)
	started := time.Now()

	res := &Result{
		Label:  label,
		Type:   f.GetType(),
		Status: ResultStatusSuccess,
	}

	if f.Func == nil {
		logger.Debug("no function to run, returning success")
		return Results{res}
	}

	// buffered so the goroutine never blocks if we stop waiting
	frCh := make(chan FunctionCommandReturn, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("function command panicked", "panic", r)
				frCh <- FunctionCommandReturn{Err: NewErrFunctionCmdPanic(r)}
			}
		}()

		logger.Debug("executing function command")
		frCh <- f.Func(ctx)
	}()

	select {
	case fr := <-frCh:
		res.Output = fr.Output
		if fr.Err != nil {
			res.Status = ResultStatusError
			res.Error = fr.Err
		}

	case <-ctx.Done():
		logger.Debug("function command context cancelled", "error", ctx.Err())

		res.Status = ResultStatusError
		res.Error = ctx.Err()
	}

	res.Duration = time.Since(started)
	logger.Debug("function command completed", "status", res.Status.String(), "error", res.Error)

	return Results{res}
}
