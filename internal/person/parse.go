// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package person

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const sep = ","

var (
	// ErrParse is the error kind for every rejected input.
	ErrParse = errors.New("invalid person")
	// ErrMissingName is returned when the first segment is empty.
	ErrMissingName = fmt.Errorf("%w: missing name", ErrParse)
	// ErrMissingAge is returned when there is no segment after the name.
	ErrMissingAge = fmt.Errorf("%w: missing age", ErrParse)
	// ErrInvalidAge is returned when the age segment is not an unsigned base-10 integer.
	ErrInvalidAge = fmt.Errorf("%w: invalid age", ErrParse)
)

// draft is the state threaded through the parse stages.
type draft struct {
	input    string
	segments []string
	name     string
	age      uint
}

// stage is one checked step of Parse. A non-nil error stops the pipeline.
type stage func(d *draft) error

var stages = []stage{
	splitSegments,
	takeName,
	takeAge,
}

// Parse converts s into a Person. Every error it returns wraps ErrParse.
func Parse(s string) (Person, error) {
	d := &draft{input: s}

	for _, st := range stages {
		if err := st(d); err != nil {
			return Person{}, err
		}
	}

	return Person{Name: d.name, Age: d.age}, nil
}

// splitSegments keeps the first two segments; anything after the second comma
// stays in the third element and is ignored.
func splitSegments(d *draft) error {
	d.segments = strings.SplitN(d.input, sep, 3)
	return nil
}

func takeName(d *draft) error {
	if len(d.segments) == 0 || d.segments[0] == "" {
		return ErrMissingName
	}

	d.name = d.segments[0]

	return nil
}

func takeAge(d *draft) error {
	if len(d.segments) < 2 {
		return ErrMissingAge
	}

	age, err := strconv.ParseUint(d.segments[1], 10, strconv.IntSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAge, err)
	}

	d.age = uint(age)

	return nil
}
