// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"os"
	"testing"
)

func TestOSStore_Lookup(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	// Cannot run in parallel because it modifies environment variables
	testKey := "TEST_ENV_VARIABLE_FOR_TESTING"
	testValue := "test_value_123"

	// Set an environment variable for testing
	originalValue, wasSet := os.LookupEnv(testKey)
	os.Setenv(testKey, testValue)
	t.Cleanup(func() {
		if wasSet {
			os.Setenv(testKey, originalValue)
		} else {
			os.Unsetenv(testKey)
		}
	})

	st := &OSStore{}

	tests := []struct {
		name        string
		key         string
		want        string
		wantPresent bool
	}{
		{
			name:        "existing environment variable",
			key:         testKey,
			want:        testValue,
			wantPresent: true,
		},
		{
			name:        "non-existing environment variable",
			key:         "NONEXISTENT_ENV_VAR_TESTING_12345",
			want:        "",
			wantPresent: false,
		},
	}

	for _, tt := range tests { //nolint:paralleltest // Test modifies environment variables
		t.Run(tt.name, func(t *testing.T) {
			// Cannot run in parallel because parent test modifies environment variables
			got, present := st.Lookup(tt.key)
			if got != tt.want || present != tt.wantPresent {
				t.Errorf("OSStore.Lookup() = (%v, %v), want (%v, %v)", got, present, tt.want, tt.wantPresent)
			}
		})
	}
}

func TestOSStore_SetUnset(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	testKey := "TEST_ENV_VARIABLE_SET_UNSET"

	originalValue, wasSet := os.LookupEnv(testKey)
	t.Cleanup(func() {
		if wasSet {
			os.Setenv(testKey, originalValue)
		} else {
			os.Unsetenv(testKey)
		}
	})

	st := &OSStore{}

	st.Set(testKey, "written")
	if got, ok := st.Lookup(testKey); !ok || got != "written" {
		t.Errorf("after Set, Lookup() = (%v, %v), want (written, true)", got, ok)
	}

	st.Unset(testKey)
	if got, ok := st.Lookup(testKey); ok {
		t.Errorf("after Unset, Lookup() = (%v, %v), want absent", got, ok)
	}
}

func TestMapStore(t *testing.T) {
	t.Parallel()

	st := MapStore{"PRESENT": "value"}

	tests := []struct {
		name        string
		op          func()
		key         string
		want        string
		wantPresent bool
	}{
		{
			name:        "existing key",
			op:          func() {},
			key:         "PRESENT",
			want:        "value",
			wantPresent: true,
		},
		{
			name:        "missing key",
			op:          func() {},
			key:         "MISSING",
			wantPresent: false,
		},
		{
			name:        "set then lookup",
			op:          func() { st.Set("NEW", "fresh") },
			key:         "NEW",
			want:        "fresh",
			wantPresent: true,
		},
		{
			name:        "unset then lookup",
			op:          func() { st.Unset("PRESENT") },
			key:         "PRESENT",
			wantPresent: false,
		},
	}

	for _, tt := range tests { //nolint:paralleltest // Cases mutate the shared map in order
		t.Run(tt.name, func(t *testing.T) {
			tt.op()
			got, present := st.Lookup(tt.key)
			if got != tt.want || present != tt.wantPresent {
				t.Errorf("MapStore.Lookup() = (%v, %v), want (%v, %v)", got, present, tt.want, tt.wantPresent)
			}
		})
	}
}

// TestStore_InterfaceCompliance ensures both implementations satisfy Store
func TestStore_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ Store = &OSStore{}
	var _ Store = MapStore{}
	// If this compiles, the test passes
}
