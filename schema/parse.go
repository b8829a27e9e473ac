// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/stacklok/typedenv/rule"
)

// Parse failure diagnostics. The accessor wraps these with the variable
// name; the texts themselves stay key-agnostic.
var (
	errPatternMismatch = errors.New("the value does not match the pattern")
	errEmpty           = errors.New("the value is empty")
	errNotNumber       = errors.New("the value is not a number")
	errNotInteger      = errors.New("the value is not an integer")
	errBelowMin        = errors.New("the value is less than the minimum")
	errAboveMax        = errors.New("the value is greater than the maximum")
	errNotBool         = errors.New("the value is not a boolean")
	errNotInEnum       = errors.New("the value is not in the enum")
	errRuleRejected    = errors.New("the value does not satisfy the rule")
)

var (
	defaultTrueValues  = []string{"true", "1", "yes", "y"}
	defaultFalseValues = []string{"false", "0", "no", "n"}
)

// Parse implements Variable. The returned value is the raw string,
// untrimmed.
func (v StringVar) Parse(raw string) (any, error) {
	pattern, constrained, err := v.pattern()
	if err != nil {
		// A malformed pattern is deferred to parse time by design and
		// reported with the compiler's own text.
		return nil, err
	}

	switch {
	case constrained:
		if !pattern.MatchString(raw) {
			return nil, errPatternMismatch
		}
	case !v.AllowEmpty && strings.TrimSpace(raw) == "":
		return nil, errEmpty
	}

	if v.Rule != "" {
		accepted, err := rule.Eval(v.Rule, raw)
		if err != nil {
			return nil, err
		}
		if !accepted {
			return nil, errRuleRejected
		}
	}

	return raw, nil
}

// pattern resolves the configured pattern, compiling the textual form on
// demand.
func (v StringVar) pattern() (*regexp.Regexp, bool, error) {
	if v.Regexp != nil {
		return v.Regexp, true, nil
	}
	if v.Pattern == "" {
		return nil, false, nil
	}
	compiled, err := regexp.Compile(v.Pattern)
	if err != nil {
		return nil, false, err
	}
	return compiled, true, nil
}

// Parse implements Variable.
func (v NumberVar) Parse(raw string) (any, error) {
	number, err := parseNumber(raw)
	if err != nil {
		return nil, err
	}
	if v.Format == FormatInteger && !isIntegral(number) {
		return nil, errNotInteger
	}
	if v.Min != nil && number < *v.Min {
		return nil, errBelowMin
	}
	if v.Max != nil && number > *v.Max {
		return nil, errAboveMax
	}
	return number, nil
}

// Parse implements Variable.
func (v BoolVar) Parse(raw string) (any, error) {
	lowered := strings.ToLower(raw)
	// True spellings win when a value appears in both lists.
	if matchesAnyFold(v.TrueValues, defaultTrueValues, lowered) {
		return true, nil
	}
	if matchesAnyFold(v.FalseValues, defaultFalseValues, lowered) {
		return false, nil
	}
	return nil, errNotBool
}

// Parse implements Variable. Matching is exact; no case folding.
func (v EnumVar[T]) Parse(raw string) (any, error) {
	if !lo.Contains(v.Values, T(raw)) {
		return nil, errNotInEnum
	}
	return T(raw), nil
}

// Parse implements Variable. The raw value is a plain number scaled by the
// configured unit; numeric failures are reported with the number parser's
// own text.
func (v DurationVar) Parse(raw string) (any, error) {
	number, err := parseNumber(raw)
	if err != nil {
		return nil, err
	}
	return time.Duration(number * float64(v.Unit)), nil
}

func parseNumber(raw string) (float64, error) {
	number, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(number) {
		return 0, errNotNumber
	}
	return number, nil
}

func isIntegral(number float64) bool {
	return !math.IsInf(number, 0) && number == math.Trunc(number)
}

// matchesAnyFold reports whether lowered equals any entry of values (or of
// fallback when values is empty), compared case-insensitively.
func matchesAnyFold(values, fallback []string, lowered string) bool {
	if len(values) == 0 {
		values = fallback
	}
	return lo.SomeBy(values, func(candidate string) bool {
		return strings.ToLower(candidate) == lowered
	})
}
