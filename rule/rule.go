// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package rule provides a CEL-backed engine for custom validation rules
// evaluated against raw environment variable values.
package rule

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// MaxExpressionLength is the maximum allowed length for a rule expression.
	// This limit prevents DoS attacks via excessively long expressions.
	MaxExpressionLength = 10000

	// costLimit is the runtime cost limit for rule evaluation.
	// This prevents DoS attacks via expensive operations in expressions.
	costLimit = 1000000
)

// envCache holds the lazily-initialized CEL environment shared by all rules.
// Every rule sees a single string variable named "value" holding the raw
// environment variable value under validation.
var envCache = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(cel.Variable("value", cel.StringType))
})

// Rule represents a pre-compiled validation rule ready for evaluation.
type Rule struct {
	source  string
	program cel.Program
}

// Source returns the original expression source string.
func (r *Rule) Source() string {
	return r.source
}

// Compile parses and compiles a rule expression, returning a Rule that can
// be evaluated multiple times against different raw values.
//
// Returns an error if the expression exceeds the maximum length, a
// CompileError if the expression has syntax or type checking errors, or
// ErrNotBool if the expression does not produce a boolean.
func Compile(expr string) (*Rule, error) {
	// Check expression length to prevent DoS via excessively long expressions
	if len(expr) > MaxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), MaxExpressionLength)
	}

	env, err := envCache()
	if err != nil {
		return nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, newCompileError(expr, issues)
	}

	// A rule is an acceptance predicate; anything else is a schema mistake.
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: rule %q produces %s", ErrNotBool, expr, ast.OutputType())
	}

	// Compile to a program with cost limit to prevent DoS via expensive operations
	program, err := env.Program(ast, cel.CostLimit(costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Rule{
		source:  expr,
		program: program,
	}, nil
}

// Eval executes the rule against a single raw value and reports whether the
// value is accepted.
func (r *Rule) Eval(value string) (bool, error) {
	out, _, err := r.program.Eval(map[string]any{"value": value})
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	accepted, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrNotBool, out.Value())
	}
	return accepted, nil
}

// Eval is the one-shot form used by schema parsing: rules are compiled
// lazily at parse time so a malformed rule never fails schema construction.
func Eval(expr, value string) (bool, error) {
	r, err := Compile(expr)
	if err != nil {
		return false, err
	}
	return r.Eval(value)
}
