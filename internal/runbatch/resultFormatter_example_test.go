// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"errors"
	"os"
)

func ExampleResults_WriteText() {
	results := Results{{
		Label:  "basics",
		Status: ResultStatusError,
		Error:  ErrResultChildrenHasError,
		Children: Results{
			{Label: "good record", Status: ResultStatusSuccess, Output: "Mark,20"},
			{Label: "bad sum", Status: ResultStatusError, Error: errors.New("total 4950, want 5050")},
		},
	}}

	_ = results.WriteText(os.Stdout)
	// Output:
	// ✗ basics
	//   ✓ good record
	//   ✗ bad sum
	//     ➜ Error: total 4950, want 5050
}
