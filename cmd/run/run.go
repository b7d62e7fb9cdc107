// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run holds the run subcommand, which executes workbooks of drills.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/kata/internal/ctxlog"
	"github.com/matt-FFFFFF/kata/internal/runbatch"
	"github.com/matt-FFFFFF/kata/internal/workbook"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag                 = "file"
	dirFlag                  = "dir"
	outputSuccessDetailsFlag = "output-success-details"
	durationsFlag            = "durations"
	cliExitStr               = ""
)

var (
	// ErrGetWorkbook is returned when a workbook URL cannot be fetched.
	ErrGetWorkbook = errors.New("failed to get workbook")
	// ErrNoWorkbookSource is returned when neither --file nor --dir is given.
	ErrNoWorkbookSource = errors.New("specify at least one workbook with --file or --dir")
)

// RunCmd runs the drills of one or more workbooks.
var RunCmd = &cli.Command{
	Name:  "run",
	Usage: "Run workbooks of drills",
	Description: `Run the drills defined in one or more workbooks and print the results.

Workbook URLs use Hashicorp's go-getter syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.

With --dir every *.kata.yaml, *.kata.yml and *.kata.hcl file in the directory is run.
The command exits non-zero when any drill fails.`,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    fileFlag,
			Aliases: []string{"f"},
			Usage: "URL of a workbook to run. " +
				"Supports Hashicorp's go-getter syntax. " +
				"Specify multiple times to run multiple workbooks.",
		},
		&cli.StringFlag{
			Name:      dirFlag,
			Aliases:   []string{"d"},
			Usage:     "Directory of workbooks to run",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.BoolFlag{
			Name:     outputSuccessDetailsFlag,
			Aliases:  []string{"success"},
			Usage:    "Include the output of successful drills",
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:     durationsFlag,
			Usage:    "Include how long each drill took",
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	runID := uuid.NewString()
	logger := ctxlog.Logger(ctx).With("command", cmd.Name, "run_id", runID)
	ctx = ctxlog.New(ctx, logger)

	defs, err := loadDefinitions(ctx, cmd.StringSlice(fileFlag), cmd.String(dirFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	opts := runbatch.DefaultOutputOptions()
	opts.ShowSuccessDetails = cmd.Bool(outputSuccessDetailsFlag)
	opts.ShowDurations = cmd.Bool(durationsFlag)

	res, err := runDefinitions(ctx, cmd.Root().Writer, runID, defs, opts)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to write results: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if res.HasError() {
		logger.Error("Some drills failed. See above for details.")
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

// loadDefinitions fetches every URL and then loads dir, in that order.
func loadDefinitions(ctx context.Context, urls []string, dir string) ([]*workbook.Definition, error) {
	if len(urls) == 0 && dir == "" {
		return nil, ErrNoWorkbookSource
	}

	defs := make([]*workbook.Definition, 0, len(urls))

	for i, u := range urls {
		if u == "" {
			return nil, fmt.Errorf("%w: the URL at index %d is empty", ErrGetWorkbook, i)
		}

		name, data, err := getURL(ctx, u)
		if err != nil {
			return nil, err
		}

		def, err := workbook.Decode(name, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", u, err)
		}

		defs = append(defs, def)
	}

	if dir != "" {
		loaded, err := workbook.LoadDir(ctx, dir)
		if err != nil {
			return nil, err
		}

		defs = append(defs, loaded...)
	}

	return defs, nil
}

// runDefinitions runs the workbooks one after another and writes the result tree to w.
func runDefinitions(
	ctx context.Context, w io.Writer, runID string, defs []*workbook.Definition, opts *runbatch.OutputOptions,
) (runbatch.Results, error) {
	runnables := make([]runbatch.Runnable, len(defs))
	for i, def := range defs {
		runnables[i] = workbook.Build(def)
	}

	var top runbatch.Runnable

	if len(runnables) == 1 {
		top = runnables[0]
	} else {
		top = &runbatch.SerialBatch{
			BaseCommand: &runbatch.BaseCommand{Label: "Aggregate"},
			Commands:    runnables,
		}
	}

	ctxlog.Info(ctx, "running workbooks", "workbooks", len(defs))

	res := top.Run(ctx)

	if _, err := fmt.Fprintf(w, "Run %s\n", runID); err != nil {
		return res, err
	}

	return res, res.WriteTextWithOptions(w, opts)
}

// getURL fetches a single workbook with Hashicorp's go-getter into a temporary
// directory and returns its file name and content.
func getURL(ctx context.Context, url string) (string, []byte, error) {
	name := sourceFileName(url)
	if name == "" || name == "." || name == "/" {
		return "", nil, fmt.Errorf("%w: no file name in URL %s", ErrGetWorkbook, url)
	}

	tmpDir, err := os.MkdirTemp("", "kata-getter-*")
	if err != nil {
		return "", nil, errors.Join(ErrGetWorkbook, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return "", nil, errors.Join(ErrGetWorkbook, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, name),
		Pwd:     wd,
		GetMode: getter.ModeFile,
		Copy:    true,
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return "", nil, errors.Join(ErrGetWorkbook, err)
	}

	data, err := os.ReadFile(res.Dst)
	if err != nil {
		return "", nil, errors.Join(ErrGetWorkbook, err)
	}

	return name, data, nil
}

// sourceFileName is the last path element of a go-getter URL, without any
// query string, e.g. basics.kata.yaml for git::https://host/repo//wb/basics.kata.yaml?ref=main.
func sourceFileName(url string) string {
	if i := strings.Index(url, "?"); i >= 0 {
		url = url[:i]
	}

	if url == "" {
		return ""
	}

	return path.Base(filepath.ToSlash(url))
}
