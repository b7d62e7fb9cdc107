// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workbook

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/kata/internal/person"
	"github.com/matt-FFFFFF/kata/internal/runbatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func ptr[T any](v T) *T {
	return &v
}

func runDrill(t *testing.T, d Drill) *runbatch.Result {
	t.Helper()

	def := &Definition{Name: "single", Drills: []Drill{d}}
	require.NoError(t, def.Validate())

	results := Build(def).Run(context.Background())
	require.Len(t, results, 1)
	require.Len(t, results[0].Children, 1)

	return results[0].Children[0]
}

func TestBuild_Shape(t *testing.T) {
	defer goleak.VerifyNone(t)

	def, err := Decode("basics.kata.yaml", []byte(basicsYAML))
	require.NoError(t, err)

	rb := Build(def)
	assert.Equal(t, "ParallelBatch", rb.GetType())
	assert.Equal(t, "basics", rb.GetLabel())

	results := rb.Run(context.Background())
	require.Len(t, results, 1)
	assert.False(t, results.HasError(), "every drill in the sample workbook should pass")
	assert.Equal(t, 4, results.Count(runbatch.ResultStatusSuccess))

	def.Parallel = false
	assert.Equal(t, "SerialBatch", Build(def).GetType())
}

func TestRecordDrill(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name       string
		drill      Drill
		wantStatus runbatch.ResultStatus
		wantOutput string
		wantErr    error
	}{
		{
			name:       "lenient good",
			drill:      Drill{Type: TypeRecord, Input: ptr("Mark,20"), Expect: ptr("Mark,20")},
			wantStatus: runbatch.ResultStatusSuccess,
			wantOutput: "Mark,20",
		},
		{
			name:       "lenient fallback",
			drill:      Drill{Type: TypeRecord, Input: ptr("Mark,twenty"), Expect: ptr(person.Default().String())},
			wantStatus: runbatch.ResultStatusSuccess,
			wantOutput: "John,30",
		},
		{
			name:       "lenient wrong expectation",
			drill:      Drill{Type: TypeRecord, Input: ptr(",1"), Expect: ptr(",1")},
			wantStatus: runbatch.ResultStatusError,
			wantOutput: "John,30",
			wantErr:    ErrUnexpectedResult,
		},
		{
			name:       "strict good",
			drill:      Drill{Type: TypeRecord, Input: ptr("Tom,42"), Strict: true, Expect: ptr("Tom,42")},
			wantStatus: runbatch.ResultStatusSuccess,
			wantOutput: "Tom,42",
		},
		{
			name:       "strict failure reported",
			drill:      Drill{Type: TypeRecord, Input: ptr("Mark,"), Strict: true},
			wantStatus: runbatch.ResultStatusError,
			wantErr:    person.ErrInvalidAge,
		},
		{
			name:       "strict expected failure",
			drill:      Drill{Type: TypeRecord, Input: ptr("Mark,twenty"), Strict: true, ExpectError: true},
			wantStatus: runbatch.ResultStatusSuccess,
			wantOutput: "rejected: invalid person: invalid age: strconv.ParseUint: parsing \"twenty\": invalid syntax",
		},
		{
			name:       "strict expected failure but parsed",
			drill:      Drill{Type: TypeRecord, Input: ptr("Mark,20"), Strict: true, ExpectError: true},
			wantStatus: runbatch.ResultStatusError,
			wantOutput: "Mark,20",
			wantErr:    ErrUnexpectedResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runDrill(t, tt.drill)

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantOutput, res.Output)

			if tt.wantErr != nil {
				assert.ErrorIs(t, res.Error, tt.wantErr)
			} else {
				assert.NoError(t, res.Error)
			}
		})
	}
}

func TestSumDrill(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name       string
		drill      Drill
		wantStatus runbatch.ResultStatus
		wantOutput string
		wantErr    error
	}{
		{
			name:       "upto with expectation",
			drill:      Drill{Type: TypeSum, Upto: ptr(100), Workers: 8, ExpectTotal: ptr(uint64(4950))},
			wantStatus: runbatch.ResultStatusSuccess,
			wantOutput: "4950",
		},
		{
			name:       "values with default workers",
			drill:      Drill{Type: TypeSum, Values: []uint64{5, 10, 20}},
			wantStatus: runbatch.ResultStatusSuccess,
			wantOutput: "35",
		},
		{
			name:       "more workers than values",
			drill:      Drill{Type: TypeSum, Values: []uint64{1, 2}, Workers: 9, ExpectTotal: ptr(uint64(3))},
			wantStatus: runbatch.ResultStatusSuccess,
			wantOutput: "3",
		},
		{
			name:       "wrong expectation",
			drill:      Drill{Type: TypeSum, Upto: ptr(100), ExpectTotal: ptr(uint64(5050))},
			wantStatus: runbatch.ResultStatusError,
			wantOutput: "4950",
			wantErr:    ErrUnexpectedResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runDrill(t, tt.drill)

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantOutput, res.Output)

			if tt.wantErr != nil {
				assert.ErrorIs(t, res.Error, tt.wantErr)
			} else {
				assert.NoError(t, res.Error)
			}
		})
	}
}
