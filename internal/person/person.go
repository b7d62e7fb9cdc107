// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package person

import (
	"encoding"
	"strconv"
)

const (
	defaultName = "John"
	defaultAge  = 30
)

var (
	_ encoding.TextMarshaler   = Person{}
	_ encoding.TextUnmarshaler = (*Person)(nil)
)

// Person is a parsed record. Values returned by this package are always fully populated.
type Person struct {
	Name string `json:"name" yaml:"name"`
	Age  uint   `json:"age" yaml:"age"`
}

// Default returns the fallback record.
func Default() Person {
	return Person{Name: defaultName, Age: defaultAge}
}

// From parses s and returns the fallback record if s is not a valid `name,age` pair.
func From(s string) Person {
	p, err := Parse(s)
	if err != nil {
		return Default()
	}

	return p
}

// String returns the canonical `name,age` form, which Parse accepts back
// as long as the name contains no comma.
func (p Person) String() string {
	return p.Name + sep + strconv.FormatUint(uint64(p.Age), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (p Person) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the strict rules of Parse.
// On error p is left unchanged.
func (p *Person) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}
