// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package typedenv validates and type-converts raw string environment
variables into strongly-typed values according to a declared schema,
returning explicit success/failure results instead of panicking by
default.

# Basic Usage

Declare a schema once, then resolve typed values through an Environment:

	config := schema.Schema{
	    "PORT":      schema.Number(schema.NumberOpts{Format: schema.FormatInteger, Min: lo.ToPtr(1.0), Max: lo.ToPtr(65535.0)}),
	    "LOG_JSON":  schema.Bool(schema.BoolOpts{Default: lo.ToPtr(true)}),
	    "CACHE_TTL": schema.Duration(time.Second, schema.DurationOpts{Default: lo.ToPtr(5 * time.Minute)}),
	    "REGION":    schema.Enum([]string{"eu", "us", "ap"}, schema.EnumOpts[string]{}),
	}

	environment := typedenv.New(config)

	port := typedenv.As[float64](environment.Get("PORT"))
	if port.IsError() {
	    // handle the typed error without unwinding the stack
	}

Get never panics; failures come back inside a samber/mo Result carrying
one of three error kinds. VariableUnknownError means the key has no schema
entry (a caller bug), VariableNotFoundError means the variable is unset
with no default (a deployment issue), and VariableParseError means the raw
value failed its type's rules (a malformed input). MustGet is the explicit
fatal-on-misconfiguration counterpart; keep the two call styles distinct
rather than wrapping one in the other.

# Defaults

A declared variable with no raw value resolves to its default without ever
running the parser, so defaults are trusted as written and never
re-validated against the variable's own rules.

# Testing

Inject a store to keep tests off the real process environment, and scope
temporary overrides with WithVars, which restores prior values on every
exit path:

	environment := typedenv.New(config, typedenv.WithStore(store.MapStore{}))

	result := typedenv.WithVars(environment, map[string]*string{
	    "PORT": lo.ToPtr("8080"),
	}, func() int {
	    return run(environment)
	})
*/
package typedenv
