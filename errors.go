// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package typedenv

import (
	"fmt"

	"github.com/stacklok/typedenv/schema"
)

// EnvironmentError is implemented by every error an Environment produces:
// VariableUnknownError, VariableNotFoundError and VariableParseError. The
// union is sealed; match concrete kinds with errors.As.
type EnvironmentError interface {
	error

	// Key returns the variable name the failure refers to.
	Key() string

	setMessage(msg string)
}

// varError carries the context shared by all error kinds.
type varError struct {
	key    string
	config schema.Variable // nil for unknown-variable errors
	msg    string
}

// Key returns the variable name the failure refers to.
func (e *varError) Key() string {
	return e.key
}

// Config returns the schema entry matched for the key, or nil when the key
// has no entry.
func (e *varError) Config() schema.Variable {
	return e.config
}

// Error implements the error interface.
func (e *varError) Error() string {
	return e.msg
}

func (e *varError) setMessage(msg string) {
	e.msg = msg
}

// VariableUnknownError reports a key with no schema entry. This is a
// caller bug, not a deployment problem.
type VariableUnknownError struct {
	varError
}

// WithMessage replaces the human-readable message and returns the error
// for fluent use.
func (e *VariableUnknownError) WithMessage(msg string) *VariableUnknownError {
	e.setMessage(msg)
	return e
}

// VariableNotFoundError reports a schema entry whose variable has neither
// a raw value nor a default. This points at a misconfigured deployment.
type VariableNotFoundError struct {
	varError
}

// WithMessage replaces the human-readable message and returns the error
// for fluent use.
func (e *VariableNotFoundError) WithMessage(msg string) *VariableNotFoundError {
	e.setMessage(msg)
	return e
}

// VariableParseError reports a raw value that failed its type's validation
// rules.
type VariableParseError struct {
	varError
	raw string
}

// Raw returns the offending raw value.
func (e *VariableParseError) Raw() string {
	return e.raw
}

// WithMessage replaces the human-readable message and returns the error
// for fluent use.
func (e *VariableParseError) WithMessage(msg string) *VariableParseError {
	e.setMessage(msg)
	return e
}

func newUnknownError(key string) *VariableUnknownError {
	return &VariableUnknownError{
		varError: varError{
			key: key,
			msg: "variable not defined in the configuration",
		},
	}
}

func newNotFoundError(key string, config schema.Variable) *VariableNotFoundError {
	return &VariableNotFoundError{
		varError: varError{
			key:    key,
			config: config,
			msg:    fmt.Sprintf("env var %s is not set and has no default", key),
		},
	}
}

func newParseError(key string, config schema.Variable, raw string, cause error) *VariableParseError {
	return &VariableParseError{
		varError: varError{
			key:    key,
			config: config,
			msg:    fmt.Sprintf("Error parsing env var %s: %s", key, cause),
		},
		raw: raw,
	}
}
