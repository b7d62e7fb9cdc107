// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workbook

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/kata/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrNoWorkbooks is returned when a directory holds no workbook files.
	ErrNoWorkbooks = errors.New("no workbook files found")
	// ErrLoadWorkbooks is returned when one or more workbook files fail to load.
	ErrLoadWorkbooks = errors.New("failed to load workbooks")
)

// filePatterns are matched in each directory passed to LoadDir.
var filePatterns = []string{"*.kata.yaml", "*.kata.yml", "*.kata.hcl"}

// FsFactory returns the filesystem LoadDir reads from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// LoadDir decodes every workbook file in dir, in file name order within each pattern.
// All files are attempted; failures are collected into a single error.
func LoadDir(ctx context.Context, dir string) ([]*Definition, error) {
	fs := FsFactory()
	logger := ctxlog.Logger(ctx).With("dir", dir)

	var matches []string

	for _, pattern := range filePatterns {
		m, err := afero.Glob(fs, filepath.Join(dir, pattern))
		if err != nil {
			// only ErrBadPattern is possible and the patterns are constant
			panic(err)
		}

		matches = append(matches, m...)
	}

	if len(matches) == 0 {
		return nil, ErrNoWorkbooks
	}

	var (
		defs   []*Definition
		result *multierror.Error
	)

	for _, filename := range matches {
		data, err := afero.ReadFile(fs, filename)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		def, err := Decode(filename, data)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		logger.Debug("loaded workbook", "file", filename, "name", def.Name, "drills", len(def.Drills))

		defs = append(defs, def)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, errors.Join(ErrLoadWorkbooks, err)
	}

	return defs, nil
}
