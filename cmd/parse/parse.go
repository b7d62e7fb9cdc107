// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parse holds the parse subcommand, which turns name,age strings into records.
package parse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/TylerBrock/colorjson"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/kata/internal/color"
	"github.com/matt-FFFFFF/kata/internal/ctxlog"
	"github.com/matt-FFFFFF/kata/internal/person"
	"github.com/urfave/cli/v3"
)

const (
	strictFlag      = "strict"
	jsonFlag        = "json"
	interactiveFlag = "interactive"
)

var (
	// ErrNoInput is returned when neither inputs nor --interactive are given.
	ErrNoInput = errors.New("no input given")
	// ErrRender is returned when a record cannot be rendered as JSON.
	ErrRender = errors.New("failed to render record")
)

// ParseCmd parses each argument as a record.
var ParseCmd = &cli.Command{
	Name:      "parse",
	Usage:     "Parse name,age records",
	ArgsUsage: "INPUT...",
	Description: `Parse each INPUT as a record of the form name,age.

By default an input that cannot be parsed is replaced with the fallback record John,30.
With --strict every failure is reported instead and the command exits non-zero.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:     strictFlag,
			Aliases:  []string{"s"},
			Usage:    "Report parse failures instead of substituting the fallback record",
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:     jsonFlag,
			Aliases:  []string{"j"},
			Usage:    "Print records as JSON",
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:     interactiveFlag,
			Aliases:  []string{"i"},
			Usage:    "Read inputs from an interactive prompt",
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	p := &printer{
		w:      cmd.Root().Writer,
		strict: cmd.Bool(strictFlag),
		asJSON: cmd.Bool(jsonFlag),
		colour: color.Enabled(),
	}

	if cmd.Bool(interactiveFlag) {
		return interactive(ctx, p)
	}

	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return cli.Exit(ErrNoInput.Error(), 1)
	}

	if err := p.printAll(ctx, inputs); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

// printer writes one record per input.
type printer struct {
	w      io.Writer
	strict bool
	asJSON bool
	colour bool
}

// printAll prints every input. In strict mode the failures are collected and
// returned together once all inputs have been processed.
func (p *printer) printAll(ctx context.Context, inputs []string) error {
	var result *multierror.Error

	for _, input := range inputs {
		if err := p.print(ctx, input); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

func (p *printer) print(ctx context.Context, input string) error {
	var rec person.Person

	if p.strict {
		var err error

		rec, err = person.Parse(input)
		if err != nil {
			ctxlog.Debug(ctx, "rejected input", "input", input, "error", err)
			return fmt.Errorf("%q: %w", input, err)
		}
	} else {
		rec = person.From(input)
	}

	out := rec.String()

	if p.asJSON {
		rendered, err := p.render(rec)
		if err != nil {
			return err
		}

		out = rendered
	}

	_, err := fmt.Fprintln(p.w, out)

	return err
}

// jsonRecord has the fields of person.Person without its TextMarshaler,
// so it encodes as an object rather than a name,age string.
type jsonRecord person.Person

// render goes through a generic map because colorjson only formats decoded JSON values.
func (p *printer) render(rec person.Person) (string, error) {
	b, err := json.Marshal(jsonRecord(rec))
	if err != nil {
		return "", errors.Join(ErrRender, err)
	}

	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return "", errors.Join(ErrRender, err)
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !p.colour

	out, err := f.Marshal(obj)
	if err != nil {
		return "", errors.Join(ErrRender, err)
	}

	return string(out), nil
}
