// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, opts ...Option) *slog.Logger {
	opts = append(opts, WithDestinationWriter(buf))

	return slog.New(NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}, opts...))
}

func TestNewPrettyHandler_Defaults(t *testing.T) {
	h := NewPrettyHandler(nil)
	require.NotNil(t, h)
	assert.NotNil(t, h.h)
	assert.NotNil(t, h.b)
	assert.NotNil(t, h.m)
	assert.NotNil(t, h.writer)
	assert.False(t, h.colour)
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer

	logger := newTestLogger(&buf)
	logger.Info("partial sum", "offset", 3, "sum", 612)

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "INFO:")
	assert.Contains(t, line, "partial sum")
	assert.Contains(t, line, `"offset": 3`)
	assert.Contains(t, line, `"sum": 612`)
	assert.NotContains(t, line, "\033[", "colour must be off unless requested")
}

func TestPrettyHandler_Colour(t *testing.T) {
	var buf bytes.Buffer

	logger := newTestLogger(&buf, WithColour())
	logger.Warn("careful")

	assert.Contains(t, buf.String(), "\033[")
}

func TestPrettyHandler_EmptyAttrs(t *testing.T) {
	var buf bytes.Buffer

	newTestLogger(&buf).Info("bare")
	assert.NotContains(t, buf.String(), "{")

	buf.Reset()
	newTestLogger(&buf, WithOutputEmptyAttrs()).Info("bare")
	assert.Contains(t, buf.String(), "{}")
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer

	logger := newTestLogger(&buf).With("runID", "abc").WithGroup("drill")
	logger.Debug("done", "name", "hundred")

	line := buf.String()
	assert.Contains(t, line, "DEBUG:")
	assert.Contains(t, line, `"runID": "abc"`)
	assert.Contains(t, line, `"drill"`)
	assert.Contains(t, line, `"name": "hundred"`)
}

func TestPrettyHandler_ReplaceAttrDropsBuiltins(t *testing.T) {
	var buf bytes.Buffer

	h := NewPrettyHandler(&slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}, WithDestinationWriter(&buf))

	slog.New(h).Info("no time")

	assert.True(t, strings.HasPrefix(buf.String(), "INFO:"), "timestamp should be dropped, got %q", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrettyHandler_WriteError(t *testing.T) {
	h := NewPrettyHandler(nil, WithDestinationWriter(failingWriter{}))

	err := h.Handle(context.Background(), slog.NewRecord(testTime, slog.LevelError, "boom", 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIoWrite)
}

func TestPrettyHandler_Concurrent(t *testing.T) {
	var (
		buf bytes.Buffer
		mu  sync.Mutex
	)

	logger := slog.New(NewPrettyHandler(nil, WithDestinationWriter(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()

		return buf.Write(p)
	}))))

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			logger.Warn("worker", "id", i)
		}()
	}

	wg.Wait()

	out := buf.String()
	assert.Equal(t, 8, strings.Count(out, "WARN:"), "one line per record, got %q", out)

	for i := range 8 {
		assert.Contains(t, out, fmt.Sprintf(`"id": %d`, i))
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
