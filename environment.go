// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package typedenv

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/stacklok/typedenv/schema"
	"github.com/stacklok/typedenv/store"
)

// Environment resolves typed values for schema-declared environment
// variables backed by an injectable store.
//
// An Environment is not safe for concurrent use: the store is shared
// mutable state, and WithVars assumes callers run sequentially.
type Environment struct {
	config schema.Schema
	store  store.Store
}

// Option configures an Environment created by New.
type Option func(*Environment)

// WithStore injects the backing store. The default is the live process
// environment.
func WithStore(s store.Store) Option {
	return func(e *Environment) {
		e.store = s
	}
}

// New creates an Environment over config. The schema is held by reference
// and must not be mutated afterwards; the store is shared, never copied.
func New(config schema.Schema, opts ...Option) *Environment {
	e := &Environment{
		config: config,
		store:  &store.OSStore{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Get resolves the typed value for key. It never panics: failures come
// back inside the result.
//
// A key with no schema entry fails with VariableUnknownError regardless of
// store contents. A declared key with no raw value succeeds with its
// default when one is configured (defaults bypass parsing entirely) and
// fails with VariableNotFoundError otherwise. A present raw value is
// parsed per its variable type; failures come back as VariableParseError
// carrying the raw value.
func (e *Environment) Get(key string) mo.Result[any] {
	config, ok := e.config[key]
	if !ok {
		return mo.Err[any](newUnknownError(key))
	}

	raw, present := e.store.Lookup(key)
	if !present {
		if def, ok := config.DefaultValue(); ok {
			return mo.Ok(def)
		}
		return mo.Err[any](newNotFoundError(key, config))
	}

	value, err := config.Parse(raw)
	if err != nil {
		return mo.Err[any](newParseError(key, config, raw, err))
	}
	return mo.Ok(value)
}

// As narrows a Get result to a concrete type. Errors pass through
// untouched; a successful result of the wrong type becomes an error.
func As[T any](result mo.Result[any]) mo.Result[T] {
	if result.IsError() {
		return mo.Err[T](result.Error())
	}
	value, ok := result.MustGet().(T)
	if !ok {
		var want T
		return mo.Err[T](fmt.Errorf("unexpected value type %T, want %T", result.MustGet(), want))
	}
	return mo.Ok(value)
}

// MustGet resolves the typed value for key and panics with the carried
// EnvironmentError on failure. An optional message replaces the error's
// message before the panic. Use Get at call sites that cannot accept a
// fatal-on-misconfiguration policy.
func (e *Environment) MustGet(key string, msg ...string) any {
	result := e.Get(key)
	if len(msg) > 0 && result.IsError() {
		if envErr, ok := result.Error().(EnvironmentError); ok {
			envErr.setMessage(msg[0])
		}
	}
	return result.MustGet()
}

// Raw returns the raw store value for key, bypassing the schema, defaults
// and parsing. Useful for inspecting or restoring values without
// triggering validation.
func (e *Environment) Raw(key string) (string, bool) {
	return e.store.Lookup(key)
}

// Set writes value directly into the store.
func (e *Environment) Set(key, value string) {
	e.store.Set(key, value)
}

// Unset removes key from the store.
func (e *Environment) Unset(key string) {
	e.store.Unset(key)
}

// Snapshot materializes every schema-declared variable through the fatal
// path: any single key's failure panics with that key's EnvironmentError,
// and no partial snapshot is returned.
func (e *Environment) Snapshot() map[string]any {
	values := make(map[string]any, len(e.config))
	for key := range e.config {
		values[key] = e.Get(key).MustGet()
	}
	return values
}

// WithVars runs fn with the given raw overrides applied to env's store and
// returns fn's result. A nil override value clears the variable for the
// scope. Prior raw values are saved first and restored on every exit path,
// including a panicking fn, so overrides cannot leak; variables that were
// absent are restored to absent.
//
// Designed for deterministic, synchronous test setup. Concurrent callers
// racing on the same keys will corrupt each other's restore step.
func WithVars[R any](env *Environment, overrides map[string]*string, fn func() R) R {
	saved := make(map[string]*string, len(overrides))
	for key := range overrides {
		if prev, ok := env.Raw(key); ok {
			saved[key] = &prev
		} else {
			saved[key] = nil
		}
	}

	defer func() {
		for key, prev := range saved {
			if prev == nil {
				env.Unset(key)
			} else {
				env.Set(key, *prev)
			}
		}
	}()

	for key, value := range overrides {
		if value == nil {
			env.Unset(key)
		} else {
			env.Set(key, *value)
		}
	}
	return fn()
}
