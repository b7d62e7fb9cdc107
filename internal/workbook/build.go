// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workbook

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/matt-FFFFFF/kata/internal/ctxlog"
	"github.com/matt-FFFFFF/kata/internal/parallelsum"
	"github.com/matt-FFFFFF/kata/internal/person"
	"github.com/matt-FFFFFF/kata/internal/runbatch"
)

// ErrUnexpectedResult is returned by a drill whose outcome differs from its expectation.
var ErrUnexpectedResult = errors.New("unexpected result")

// Build turns a validated definition into a batch with one FunctionCommand per drill.
func Build(def *Definition) runbatch.Runnable {
	cmds := make([]runbatch.Runnable, 0, len(def.Drills))

	for i, d := range def.Drills {
		cmds = append(cmds, &runbatch.FunctionCommand{
			BaseCommand: &runbatch.BaseCommand{Label: d.Label(i)},
			Func:        drillFunc(d),
		})
	}

	base := &runbatch.BaseCommand{Label: def.Name}

	if def.Parallel {
		return &runbatch.ParallelBatch{BaseCommand: base, Commands: cmds}
	}

	return &runbatch.SerialBatch{BaseCommand: base, Commands: cmds}
}

func drillFunc(d Drill) runbatch.FunctionCommandFunc {
	switch d.Type {
	case TypeRecord:
		return func(ctx context.Context) runbatch.FunctionCommandReturn {
			return runRecord(ctx, d)
		}
	case TypeSum:
		return func(ctx context.Context) runbatch.FunctionCommandReturn {
			return runSum(ctx, d)
		}
	default:
		return func(context.Context) runbatch.FunctionCommandReturn {
			return runbatch.FunctionCommandReturn{Err: fmt.Errorf("%w: %q", ErrUnknownDrillType, d.Type)}
		}
	}
}

func runRecord(ctx context.Context, d Drill) runbatch.FunctionCommandReturn {
	input := *d.Input

	if !d.Strict {
		p := person.From(input)
		ctxlog.Debug(ctx, "record drill", "input", input, "strict", false, "person", p.String())

		return expectRecord(d, p)
	}

	p, err := person.Parse(input)
	ctxlog.Debug(ctx, "record drill", "input", input, "strict", true, "error", err)

	switch {
	case d.ExpectError && err != nil:
		return runbatch.FunctionCommandReturn{Output: "rejected: " + err.Error()}
	case d.ExpectError:
		return runbatch.FunctionCommandReturn{
			Output: p.String(),
			Err:    fmt.Errorf("%w: parsed %q, want a parse failure", ErrUnexpectedResult, p.String()),
		}
	case err != nil:
		return runbatch.FunctionCommandReturn{Err: err}
	default:
		return expectRecord(d, p)
	}
}

func expectRecord(d Drill, p person.Person) runbatch.FunctionCommandReturn {
	got := p.String()
	ret := runbatch.FunctionCommandReturn{Output: got}

	if d.Expect != nil && *d.Expect != got {
		ret.Err = fmt.Errorf("%w: got %q, want %q", ErrUnexpectedResult, got, *d.Expect)
	}

	return ret
}

func runSum(ctx context.Context, d Drill) runbatch.FunctionCommandReturn {
	values := d.Values
	if d.Upto != nil {
		values = parallelsum.Range(*d.Upto)
	}

	total, err := parallelsum.Sum(ctx, values, d.workerCount())
	if err != nil {
		return runbatch.FunctionCommandReturn{Err: err}
	}

	ret := runbatch.FunctionCommandReturn{Output: strconv.FormatUint(total, 10)}

	if d.ExpectTotal != nil && *d.ExpectTotal != total {
		ret.Err = fmt.Errorf("%w: got %d, want %d", ErrUnexpectedResult, total, *d.ExpectTotal)
	}

	return ret
}
