// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package schema provides pure constructors for the variable configurations
// consumed by a typedenv Environment. Construction never fails: malformed
// patterns, rules or inverted bounds are accepted here and only surface when
// a raw value is parsed against them.
package schema

import (
	"regexp"
	"time"
)

// Variable is one schema entry: the type and validation rules of a single
// environment variable. It is a sealed union; the concrete variants are
// StringVar, NumberVar, BoolVar, EnumVar and DurationVar, and dispatching
// through the interface makes a parser mismatched to its variant
// unrepresentable.
type Variable interface {
	// Parse converts a raw string into the variable's target type. Error
	// texts are bare diagnostics without the variable name; the accessor
	// adds the surrounding context.
	Parse(raw string) (any, error)

	// DefaultValue returns the configured default, if any. Defaults bypass
	// Parse entirely and are never validated against the variable's rules.
	DefaultValue() (any, bool)

	isVariable()
}

// Schema maps variable names to their configurations. An Environment holds
// it as a read-only reference; do not mutate it after handing it over.
type Schema map[string]Variable

// Format selects the numeric format accepted by a number variable.
type Format int

const (
	// FormatDecimal accepts any decimal number. This is the default.
	FormatDecimal Format = iota
	// FormatInteger additionally requires a mathematically integral value.
	FormatInteger
)

// StringOpts configures a string variable. The zero value is a plain
// non-empty string.
type StringOpts struct {
	// Default is returned when the variable has no raw value.
	Default *string
	// Pattern is a regular expression source the value must match,
	// compiled lazily at parse time.
	Pattern string
	// Regexp is a precompiled pattern; it takes precedence over Pattern.
	Regexp *regexp.Regexp
	// AllowEmpty permits values that are empty after trimming. Ignored
	// when a pattern is configured, which then decides alone.
	AllowEmpty bool
	// Rule is a CEL expression over a string variable named "value" that
	// must evaluate to true for the value to be accepted. Compiled lazily
	// at parse time.
	Rule string
}

// StringVar is the configuration of a string variable.
type StringVar struct {
	StringOpts
}

// String builds a string variable configuration.
func String(opts StringOpts) StringVar {
	return StringVar{StringOpts: opts}
}

// NumberOpts configures a number variable. The zero value accepts any
// decimal number.
type NumberOpts struct {
	// Default is returned when the variable has no raw value.
	Default *float64
	// Format restricts the accepted numeric shape.
	Format Format
	// Min is the inclusive lower bound, if any.
	Min *float64
	// Max is the inclusive upper bound, if any.
	Max *float64
}

// NumberVar is the configuration of a number variable.
type NumberVar struct {
	NumberOpts
}

// Number builds a number variable configuration.
func Number(opts NumberOpts) NumberVar {
	return NumberVar{NumberOpts: opts}
}

// BoolOpts configures a boolean variable. The zero value accepts the
// default truthy and falsy spellings.
type BoolOpts struct {
	// Default is returned when the variable has no raw value.
	Default *bool
	// TrueValues replaces the default truthy spellings
	// {"true", "1", "yes", "y"}. Comparison is case-insensitive.
	TrueValues []string
	// FalseValues replaces the default falsy spellings
	// {"false", "0", "no", "n"}. Comparison is case-insensitive.
	FalseValues []string
}

// BoolVar is the configuration of a boolean variable.
type BoolVar struct {
	BoolOpts
}

// Bool builds a boolean variable configuration.
func Bool(opts BoolOpts) BoolVar {
	return BoolVar{BoolOpts: opts}
}

// EnumOpts configures an enum variable.
type EnumOpts[T ~string] struct {
	// Default is returned when the variable has no raw value. It should be
	// one of the permitted values; like every default it is not validated.
	Default *T
}

// EnumVar is the configuration of an enum variable over a named string
// type. Parsed values keep the type T.
type EnumVar[T ~string] struct {
	EnumOpts[T]

	// Values are the permitted literals, matched exactly with no case
	// folding. Enum-like mappings are supplied as lo.Values(m).
	Values []T
}

// Enum builds an enum variable configuration over the permitted values.
func Enum[T ~string](values []T, opts EnumOpts[T]) EnumVar[T] {
	return EnumVar[T]{EnumOpts: opts, Values: values}
}

// DurationOpts configures a duration variable.
type DurationOpts struct {
	// Default is returned when the variable has no raw value.
	Default *time.Duration
}

// DurationVar is the configuration of a duration variable. Raw values are
// plain numbers scaled by Unit.
type DurationVar struct {
	DurationOpts

	// Unit is the time unit one raw unit stands for, e.g. time.Second.
	Unit time.Duration
}

// Duration builds a duration variable configuration with the given unit.
func Duration(unit time.Duration, opts DurationOpts) DurationVar {
	return DurationVar{DurationOpts: opts, Unit: unit}
}

func (StringVar) isVariable()   {}
func (NumberVar) isVariable()   {}
func (BoolVar) isVariable()     {}
func (EnumVar[T]) isVariable()  {}
func (DurationVar) isVariable() {}

// DefaultValue implements Variable.
func (v StringVar) DefaultValue() (any, bool) {
	if v.Default == nil {
		return nil, false
	}
	return *v.Default, true
}

// DefaultValue implements Variable.
func (v NumberVar) DefaultValue() (any, bool) {
	if v.Default == nil {
		return nil, false
	}
	return *v.Default, true
}

// DefaultValue implements Variable.
func (v BoolVar) DefaultValue() (any, bool) {
	if v.Default == nil {
		return nil, false
	}
	return *v.Default, true
}

// DefaultValue implements Variable.
func (v EnumVar[T]) DefaultValue() (any, bool) {
	if v.Default == nil {
		return nil, false
	}
	return *v.Default, true
}

// DefaultValue implements Variable.
func (v DurationVar) DefaultValue() (any, bool) {
	if v.Default == nil {
		return nil, false
	}
	return *v.Default, true
}
