// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"log/slog"
	"testing"

	"github.com/matt-FFFFFF/kata/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Commands(t *testing.T) {
	names := make([]string, 0, len(RootCmd.Commands))
	for _, c := range RootCmd.Commands {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"parse", "sum", "run"}, names)
}

func TestConfigureLogging(t *testing.T) {
	original := ctxlog.LevelVar.Level()
	t.Cleanup(func() { ctxlog.LevelVar.Set(original) })

	ctx := context.Background()

	got, err := configureLogging(ctx, "debug", "")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, ctxlog.LevelVar.Level())
	assert.Same(t, ctxlog.DefaultLogger, ctxlog.Logger(got))

	ctxlog.LevelVar.Set(slog.LevelError)

	got, err = configureLogging(ctx, "", "JSON")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, ctxlog.LevelVar.Level(), "empty level keeps the current one")
	assert.Same(t, ctxlog.JSONLogger, ctxlog.Logger(got))

	_, err = configureLogging(ctx, "loud", "")
	require.ErrorIs(t, err, ErrInvalidLogLevel)

	_, err = configureLogging(ctx, "", "xml")
	require.ErrorIs(t, err, ErrInvalidLogFormat)
}
