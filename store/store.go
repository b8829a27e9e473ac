// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package store

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks Store

import "os"

// Store defines the key/value boundary backing an environment accessor.
// Values are optional: Lookup reports presence alongside the value, and
// Unset clears a key entirely rather than setting it to "".
type Store interface {
	// Lookup returns the raw value for key and whether it is present.
	Lookup(key string) (string, bool)
	// Set writes the raw value for key.
	Set(key, value string)
	// Unset removes key from the store.
	Unset(key string)
}

// OSStore implements Store against the live process environment.
type OSStore struct{}

// Lookup returns the value of the environment variable named by the key.
func (*OSStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set sets the value of the environment variable named by the key.
func (*OSStore) Set(key, value string) {
	// os.Setenv only fails on keys the platform rejects outright.
	_ = os.Setenv(key, value)
}

// Unset removes the environment variable named by the key.
func (*OSStore) Unset(key string) {
	_ = os.Unsetenv(key)
}

// MapStore is an in-memory Store. It is the substitute of choice in tests,
// keeping them independent of real process state.
type MapStore map[string]string

// Lookup returns the stored value for key and whether it is present.
func (m MapStore) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

// Set writes the value for key.
func (m MapStore) Set(key, value string) {
	m[key] = value
}

// Unset removes key from the map.
func (m MapStore) Unset(key string) {
	delete(m, key)
}
