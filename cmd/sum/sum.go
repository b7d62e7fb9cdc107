// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sum holds the sum subcommand, a front end for the parallel reduction.
package sum

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/kata/internal/ctxlog"
	"github.com/matt-FFFFFF/kata/internal/parallelsum"
	"github.com/urfave/cli/v3"
)

const (
	workersFlag = "workers"
	uptoFlag    = "upto"
)

var (
	// ErrNoValues is returned when neither values nor --upto are given.
	ErrNoValues = errors.New("specify values or --upto")
	// ErrConflictingInput is returned when both values and --upto are given.
	ErrConflictingInput = errors.New("values and --upto are mutually exclusive")
	// ErrInvalidValue is returned for an argument that is not an unsigned integer.
	ErrInvalidValue = errors.New("invalid value")
	// ErrNegativeUpto is returned when --upto is below zero.
	ErrNegativeUpto = errors.New("--upto must not be negative")
)

// SumCmd adds up its arguments across a pool of workers.
var SumCmd = &cli.Command{
	Name:      "sum",
	Usage:     "Sum unsigned integers in parallel",
	ArgsUsage: "[VALUE...]",
	Description: `Sum the VALUE arguments, or 0..N-1 when --upto N is given.

Worker k adds the values at positions k, k+W, k+2W and so on, where W is the
number of workers, and then folds its partial sum into a shared total.
Set KATA_LOG_LEVEL=debug to see the partial sums.`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:        workersFlag,
			Aliases:     []string{"w"},
			Usage:       "Number of workers, must be at least 1",
			Value:       runtime.NumCPU(),
			DefaultText: "number of CPUs",
			OnlyOnce:    true,
		},
		&cli.IntFlag{
			Name:     uptoFlag,
			Aliases:  []string{"n"},
			Usage:    "Sum 0..N-1 instead of the arguments",
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	values, err := collectValues(cmd.Args().Slice(), cmd.Int(uptoFlag), cmd.IsSet(uptoFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	workers := cmd.Int(workersFlag)
	ctxlog.Debug(ctx, "summing", "values", len(values), "workers", workers)

	total, err := parallelsum.Sum(ctx, values, workers)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, total)

	return err
}

// collectValues returns the input sequence from either the arguments or upto.
// Every malformed argument is reported, not just the first.
func collectValues(args []string, upto int, uptoSet bool) ([]uint64, error) {
	switch {
	case uptoSet && len(args) > 0:
		return nil, ErrConflictingInput
	case uptoSet && upto < 0:
		return nil, ErrNegativeUpto
	case uptoSet:
		return parallelsum.Range(upto), nil
	case len(args) == 0:
		return nil, ErrNoValues
	}

	var (
		values = make([]uint64, 0, len(args))
		result *multierror.Error
	)

	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%w %q: %w", ErrInvalidValue, arg, err))
			continue
		}

		values = append(values, v)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return values, nil
}
