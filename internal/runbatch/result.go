// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"errors"
	"slices"
	"time"
)

// ErrResultChildrenHasError is set on a batch result when any child failed.
var ErrResultChildrenHasError = errors.New("result has children with errors")

// ResultStatus is the outcome of a Runnable.
type ResultStatus int

const (
	// ResultStatusSuccess means the runnable completed without error.
	ResultStatusSuccess ResultStatus = iota
	// ResultStatusError means the runnable, or one of its children, failed.
	ResultStatusError
	// ResultStatusSkipped means the runnable never ran, e.g. after cancellation.
	ResultStatusSkipped
)

// String implements fmt.Stringer.
func (s ResultStatus) String() string {
	switch s {
	case ResultStatusSuccess:
		return "success"
	case ResultStatusError:
		return "error"
	case ResultStatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the outcome of running a command or batch.
type Result struct {
	Label    string
	Type     string
	Status   ResultStatus
	Error    error
	Output   string // Human readable output of a function command
	Duration time.Duration
	Children Results // Results of the commands in a batch
}

// Results is a list of results.
type Results []*Result

// HasError reports whether any result in the tree failed or was skipped with an error.
func (r Results) HasError() bool {
	for v := range slices.Values(r) {
		if v.Error != nil || v.Status == ResultStatusError {
			return true
		}

		if v.Children.HasError() {
			return true
		}
	}

	return false
}

// Count returns how many leaf results have the given status.
func (r Results) Count(status ResultStatus) int {
	n := 0

	for v := range slices.Values(r) {
		if len(v.Children) > 0 {
			n += v.Children.Count(status)
			continue
		}

		if v.Status == status {
			n++
		}
	}

	return n
}

// batchResult wraps the children of a batch in a single parent result.
func batchResult(label, typ string, children Results, started time.Time) Results {
	res := &Result{
		Label:    label,
		Type:     typ,
		Status:   ResultStatusSuccess,
		Duration: time.Since(started),
		Children: children,
	}

	if children.HasError() {
		res.Status = ResultStatusError
		res.Error = ErrResultChildrenHasError
	}

	return Results{res}
}
