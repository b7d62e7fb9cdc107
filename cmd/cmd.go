// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/matt-FFFFFF/kata/cmd/parse"
	"github.com/matt-FFFFFF/kata/cmd/run"
	"github.com/matt-FFFFFF/kata/cmd/sum"
	"github.com/matt-FFFFFF/kata/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"

	logFormatPretty = "pretty"
	logFormatJSON   = "json"
)

var (
	// ErrInvalidLogLevel is returned for a --log-level that is not DEBUG, INFO, WARN or ERROR.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned for a --log-format other than pretty or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		parse.ParseCmd,
		sum.SumCmd,
		run.RunCmd,
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     logLevelFlag,
			Usage:    "Log level: debug, info, warn or error. Overrides " + ctxlog.EnvVarName(),
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:     logFormatFlag,
			Usage:    "Log format: pretty or json",
			Value:    logFormatPretty,
			OnlyOnce: true,
		},
	},
	Before:    before,
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "kata",
	Description: `Kata runs two small drills: parsing name,age records with a fallback,
and summing integers across a pool of workers. Workbooks written in YAML or HCL
group drills together with their expected outcomes.`,
	Usage:     "kata run -f basics.kata.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	return configureLogging(ctx, cmd.String(logLevelFlag), cmd.String(logFormatFlag))
}

// configureLogging applies the logging flags. An empty level keeps the level read from the environment.
func configureLogging(ctx context.Context, level, format string) (context.Context, error) {
	if level != "" {
		l, ok := ctxlog.ParseLevel(level)
		if !ok {
			return ctx, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
		}

		ctxlog.LevelVar.Set(l)
	}

	switch strings.ToLower(format) {
	case "", logFormatPretty:
		return ctx, nil
	case logFormatJSON:
		return ctxlog.New(ctx, ctxlog.JSONLogger), nil
	default:
		return ctx, fmt.Errorf("%w: %q", ErrInvalidLogFormat, format)
	}
}
