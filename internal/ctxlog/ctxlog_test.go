// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := New(context.Background(), custom)
	assert.Same(t, custom, Logger(ctx))

	ctx = New(context.Background(), nil)
	assert.Same(t, DefaultLogger, Logger(ctx), "nil logger should fall back to DefaultLogger")
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{
			name: "context without logger",
			ctx:  context.Background(),
		},
		{
			name: "context with nil logger value",
			ctx:  context.WithValue(context.Background(), loggerKey{}, (*slog.Logger)(nil)),
		},
		{
			name: "context with wrong type value",
			ctx:  context.WithValue(context.Background(), loggerKey{}, "not a logger"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, DefaultLogger, Logger(tt.ctx))
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	ctx := New(context.Background(), logger)

	tests := []struct {
		name    string
		logFunc func(context.Context, string, ...any)
		level   string
	}{
		{name: "debug", logFunc: Debug, level: "level=DEBUG"},
		{name: "info", logFunc: Info, level: "level=INFO"},
		{name: "warn", logFunc: Warn, level: "level=WARN"},
		{name: "error", logFunc: Error, level: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, "hello", "drill", "sum")

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, "msg=hello")
			assert.Contains(t, out, "drill=sum")
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOk bool
	}{
		{in: "DEBUG", want: slog.LevelDebug, wantOk: true},
		{in: "info", want: slog.LevelInfo, wantOk: true},
		{in: " Warn ", want: slog.LevelWarn, wantOk: true},
		{in: "ERROR", want: slog.LevelError, wantOk: true},
		{in: "", want: slog.LevelWarn, wantOk: false},
		{in: "verbose", want: slog.LevelWarn, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestEnvVarName(t *testing.T) {
	name := EnvVarName()
	require.NotEmpty(t, name)
	assert.Regexp(t, `^[A-Z0-9_.\-]+_LOG_LEVEL$`, name)
}
