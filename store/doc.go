// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package store provides an interface-based abstraction over the mutable
key/value store that supplies raw environment variable values, enabling
dependency injection and testing isolation.

# Basic Usage

Use OSStore to read and write the live process environment:

	st := &store.OSStore{}
	value, ok := st.Lookup("MY_VAR")

Use MapStore to keep an accessor fully in memory:

	st := store.MapStore{"MY_VAR": "value"}
	environment := typedenv.New(config, typedenv.WithStore(st))

# Testing

The Store interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockStore(ctrl)
	mock.EXPECT().Lookup("MY_VAR").Return("test-value", true)

	result := myFunc(mock)

# Design

An accessor never copies the injected store; all reads and writes act
directly on the shared reference. The store is process-wide mutable state,
so callers coordinating scoped overrides must run sequentially.
*/
package store
