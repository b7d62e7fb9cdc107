// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

const prompt = "kata> "

// interactive parses one record per line until quit, exit, Ctrl+C or EOF.
func interactive(ctx context.Context, p *printer) error {
	line := liner.NewLiner()

	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	fmt.Fprintln(p.w, "Enter name,age records, `quit` or `exit` or Ctrl+C to quit.") //nolint:errcheck

	for {
		input, err := line.Prompt(prompt)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(p.w, "Aborted") //nolint:errcheck
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("error reading line: %w", err)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if done := evalLine(ctx, p, input); done {
			return nil
		}

		line.AppendHistory(input)
	}
}

// evalLine handles a single line of the prompt and reports whether the session is over.
// Failures are printed rather than returned so the session keeps going.
func evalLine(ctx context.Context, p *printer, input string) bool {
	switch strings.TrimSpace(input) {
	case "quit", "exit":
		return true
	case "":
		return false
	}

	if err := p.print(ctx, input); err != nil {
		fmt.Fprintf(p.w, "error: %s\n", err) //nolint:errcheck
	}

	return false
}
