// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/matt-FFFFFF/kata/internal/color"
)

const indentStep = "  "

// OutputOptions controls what WriteText includes.
type OutputOptions struct {
	ShowSuccessDetails bool // Print the output of successful commands too
	ShowDurations      bool // Append the run time to every line
}

// DefaultOutputOptions only shows details for failures.
func DefaultOutputOptions() *OutputOptions {
	return &OutputOptions{}
}

// WriteText writes the results as an indented tree using default options.
func (r Results) WriteText(w io.Writer) error {
	return r.WriteTextWithOptions(w, nil)
}

// WriteTextWithOptions writes the results as an indented tree.
func (r Results) WriteTextWithOptions(w io.Writer, options *OutputOptions) error {
	if options == nil {
		options = DefaultOutputOptions()
	}

	for _, res := range r {
		if err := writeResultWithIndent(w, res, "", options); err != nil {
			return err
		}
	}

	return nil
}

func writeResultWithIndent(w io.Writer, r *Result, indent string, options *OutputOptions) error {
	var statusStr string

	var statusColour color.Code

	switch r.Status {
	case ResultStatusSuccess:
		statusStr, statusColour = "✓", color.FgGreen
	case ResultStatusError:
		statusStr, statusColour = "✗", color.FgRed
	case ResultStatusSkipped:
		statusStr, statusColour = "~", color.FgYellow
	default:
		statusStr, statusColour = "?", color.FgWhite
	}

	label := r.Label
	if label == "" {
		label = "[unnamed]"
	}

	line := indent + color.Colorize(statusStr, statusColour) + " " + color.Colorize(label, color.Bold, statusColour)
	if options.ShowDurations {
		line += color.Colorize(fmt.Sprintf(" (%s)", r.Duration.Round(time.Microsecond)), color.Faint)
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err //nolint:wrapcheck
	}

	if r.Error != nil && !errors.Is(r.Error, ErrResultChildrenHasError) {
		if err := writeDetail(w, indent, "Error:", r.Error.Error(), statusColour); err != nil {
			return err
		}
	}

	showOutput := len(r.Children) == 0 && r.Output != "" &&
		(r.Status != ResultStatusSuccess || options.ShowSuccessDetails)
	if showOutput {
		if err := writeDetail(w, indent, "Output:", r.Output, color.FgCyan); err != nil {
			return err
		}
	}

	for _, child := range r.Children {
		if err := writeResultWithIndent(w, child, indent+indentStep, options); err != nil {
			return err
		}
	}

	return nil
}

// writeDetail prints a labelled block; continuation lines line up under the first.
func writeDetail(w io.Writer, indent, heading, body string, c color.Code) error {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	pad := indent + indentStep + strings.Repeat(" ", utf8.RuneCountInString("➜ "+heading)+1)

	for i, l := range lines {
		var err error
		if i == 0 {
			_, err = fmt.Fprintf(w, "%s%s%s %s\n", indent, indentStep, color.Colorize("➜ "+heading, c), l)
		} else {
			_, err = fmt.Fprintf(w, "%s%s\n", pad, l)
		}

		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}
