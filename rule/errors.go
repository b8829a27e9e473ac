// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rule

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for rule operations.
var (
	// ErrExpressionCheck is returned when a rule fails syntax or type checking.
	ErrExpressionCheck = errors.New("rule expression check failed")

	// ErrEvaluation is returned when rule evaluation fails.
	ErrEvaluation = errors.New("rule evaluation failed")

	// ErrNotBool is returned when a rule does not produce a boolean result.
	ErrNotBool = errors.New("rule returned non-boolean result")
)

// Issue represents one occurrence of an error in a rule expression.
type Issue struct {
	Line int
	Col  int
	Msg  string
}

// CompileError represents a rule syntax or type checking error with
// location information.
type CompileError struct {
	// Source is the original rule expression.
	Source string
	// Issues lists every problem the CEL compiler reported.
	Issues []Issue

	original error
}

// Error implements the error interface for CompileError.
func (ce *CompileError) Error() string {
	return fmt.Sprintf("invalid rule %q: %s", ce.Source, ce.original)
}

// Unwrap returns the underlying error.
func (ce *CompileError) Unwrap() error {
	return ce.original
}

// newCompileError creates a CompileError from CEL issues.
func newCompileError(source string, issues *cel.Issues) error {
	ce := &CompileError{
		Source:   source,
		Issues:   make([]Issue, 0, len(issues.Errors())),
		original: fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
	for _, err := range issues.Errors() {
		ce.Issues = append(ce.Issues, Issue{
			Line: err.Location.Line(),
			Col:  err.Location.Column(),
			Msg:  err.Message,
		})
	}
	return ce
}
