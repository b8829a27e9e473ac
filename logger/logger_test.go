// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stacklok/typedenv"
	"github.com/stacklok/typedenv/store"
	"github.com/stacklok/typedenv/store/mocks"
)

// TestUnstructuredLogsCheck tests the unstructuredLogs resolution
func TestUnstructuredLogsCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		present  bool
		expected bool
	}{
		{"Default Case", "", false, true},
		{"Explicitly True", "true", true, true},
		{"Explicitly False", "false", true, false},
		{"Truthy Spelling", "YES", true, true},
		{"Invalid Value", "not-a-bool", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			mockStore.EXPECT().Lookup("UNSTRUCTURED_LOGS").Return(tt.envValue, tt.present)

			environment := typedenv.New(logConfig, typedenv.WithStore(mockStore))
			if got := unstructuredLogs(environment); got != tt.expected {
				t.Errorf("unstructuredLogs() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestLogLevel tests LOG_LEVEL resolution through the typed schema
func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		present  bool
		expected zapcore.Level
	}{
		{"Default Case", "", false, zap.InfoLevel},
		{"Debug", "debug", true, zap.DebugLevel},
		{"Warn", "warn", true, zap.WarnLevel},
		{"Error", "error", true, zap.ErrorLevel},
		{"Not In Enum", "trace", true, zap.InfoLevel},
		{"Wrong Case Rejected", "DEBUG", true, zap.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := store.MapStore{}
			if tt.present {
				st["LOG_LEVEL"] = tt.envValue
			}

			environment := typedenv.New(logConfig, typedenv.WithStore(st))
			assert.Equal(t, tt.expected, logLevel(environment))
		})
	}
}

func TestInitializeWithStore(t *testing.T) { //nolint:paralleltest // Replaces the global logger
	st := store.MapStore{
		"UNSTRUCTURED_LOGS": "false",
		"LOG_LEVEL":         "warn",
	}

	InitializeWithStore(st)
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	require.NotNil(t, zap.L())
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zap.WarnLevel))
}

func TestLeveledHelpers(t *testing.T) { //nolint:paralleltest // Replaces the global logger
	core, observed := observer.New(zap.DebugLevel)
	zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	Debugf("debug message %s", "one")
	Infow("info message", "key", "value")
	Warn("warn message")
	Errorf("error message %d", 2)

	entries := observed.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "debug message one", entries[0].Message)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "info message", entries[1].Message)
	require.Len(t, entries[1].Context, 1)
	assert.Equal(t, "key", entries[1].Context[0].Key)
	assert.Equal(t, "warn message", entries[2].Message)
	assert.Equal(t, "error message 2", entries[3].Message)
}

func TestNewLogr(t *testing.T) { //nolint:paralleltest // Replaces the global logger
	core, observed := observer.New(zap.InfoLevel)
	zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	NewLogr().Info("bridged message", "key", "value")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bridged message", entries[0].Message)
}
