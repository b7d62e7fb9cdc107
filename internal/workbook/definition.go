// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workbook

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// Drill types.
const (
	TypeRecord = "record"
	TypeSum    = "sum"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor HCL.
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
	// ErrInvalidYaml is returned when a YAML workbook cannot be decoded.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrInvalidHcl is returned when an HCL workbook cannot be decoded.
	ErrInvalidHcl = errors.New("invalid HCL")
	// ErrNoDrills is returned for a workbook without drills.
	ErrNoDrills = errors.New("no drills specified")
	// ErrUnknownDrillType is returned for a drill type other than record or sum.
	ErrUnknownDrillType = errors.New("unknown drill type")
	// ErrMissingInput is returned for a record drill without input.
	ErrMissingInput = errors.New("record drill requires input")
	// ErrConflictingExpectations is returned when a record drill sets both expect and
	// expect_error, or expect_error without strict.
	ErrConflictingExpectations = errors.New("conflicting expectations")
	// ErrSumSource is returned unless a sum drill sets exactly one of values and upto.
	ErrSumSource = errors.New("sum drill requires exactly one of values or upto")
	// ErrNegativeUpto is returned when upto is below zero.
	ErrNegativeUpto = errors.New("upto must not be negative")
	// ErrNegativeWorkers is returned when workers is below zero.
	ErrNegativeWorkers = errors.New("workers must not be negative")
)

// Definition is a named list of drills.
type Definition struct {
	Name        string  `yaml:"name" hcl:"name,optional"`
	Description string  `yaml:"description" hcl:"description,optional"`
	Parallel    bool    `yaml:"parallel" hcl:"parallel,optional"`
	Drills      []Drill `yaml:"drills" hcl:"drill,block"`

	// Source is the file the definition was decoded from.
	Source string `yaml:"-"`
}

// Drill is a single record or sum exercise.
type Drill struct {
	Type string `yaml:"type" hcl:"type,label"`
	Name string `yaml:"name" hcl:"name,label"`

	// record
	Input       *string `yaml:"input" hcl:"input,optional"`
	Strict      bool    `yaml:"strict" hcl:"strict,optional"`
	Expect      *string `yaml:"expect" hcl:"expect,optional"`
	ExpectError bool    `yaml:"expect_error" hcl:"expect_error,optional"`

	// sum
	Values      []uint64 `yaml:"values" hcl:"values,optional"`
	Upto        *int     `yaml:"upto" hcl:"upto,optional"`
	Workers     int      `yaml:"workers" hcl:"workers,optional"` // 0 means runtime.NumCPU()
	ExpectTotal *uint64  `yaml:"expect_total" hcl:"expect_total,optional"`
}

// Decode parses a workbook, choosing the syntax from the file extension, and validates it.
// .yaml and .yml are YAML; .hcl is native HCL and .json is HCL's JSON syntax.
func Decode(filename string, data []byte) (*Definition, error) {
	def := &Definition{}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, def, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidYaml, filename, err)
		}
	case ".hcl", ".json":
		if err := hclsimple.Decode(filename, data, evalContext(), def); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidHcl, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	def.Source = filename
	if def.Name == "" {
		def.Name = baseName(filename)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return def, nil
}

// Validate reports every problem in the definition at once.
func (d *Definition) Validate() error {
	var result *multierror.Error

	if len(d.Drills) == 0 {
		result = multierror.Append(result, ErrNoDrills)
	}

	for i, drill := range d.Drills {
		if err := drill.validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("drill %d (%s): %w", i, drill.Label(i), err))
		}
	}

	return result.ErrorOrNil()
}

// Label is the drill name, or its type and position when unnamed.
func (d Drill) Label(i int) string {
	if d.Name != "" {
		return d.Name
	}

	return fmt.Sprintf("%s #%d", d.Type, i+1)
}

func (d Drill) validate() error {
	switch d.Type {
	case TypeRecord:
		if d.Input == nil {
			return ErrMissingInput
		}

		if d.ExpectError && (d.Expect != nil || !d.Strict) {
			return ErrConflictingExpectations
		}
	case TypeSum:
		if (d.Values == nil) == (d.Upto == nil) {
			return ErrSumSource
		}

		if d.Upto != nil && *d.Upto < 0 {
			return ErrNegativeUpto
		}

		if d.Workers < 0 {
			return ErrNegativeWorkers
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDrillType, d.Type)
	}

	return nil
}

// workerCount resolves the zero value to the number of CPUs.
func (d Drill) workerCount() int {
	if d.Workers == 0 {
		return runtime.NumCPU()
	}

	return d.Workers
}

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
	}
}

// baseName strips the directory and every extension: dir/basics.kata.yaml -> basics.
func baseName(filename string) string {
	name := filepath.Base(filename)
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}

	return name
}
