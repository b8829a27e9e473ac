// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a logging capability configured through typed
// environment variables, for running locally as a CLI and in Kubernetes
package logger

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/typedenv"
	"github.com/stacklok/typedenv/schema"
	"github.com/stacklok/typedenv/store"
)

// Level names accepted in LOG_LEVEL.
type Level string

// Supported log levels.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// logConfig declares the variables that drive logger initialization. The
// logger reads them through the accessor it ships with.
var logConfig = schema.Schema{
	"UNSTRUCTURED_LOGS": schema.Bool(schema.BoolOpts{Default: lo.ToPtr(true)}),
	"LOG_LEVEL": schema.Enum(
		[]Level{LevelDebug, LevelInfo, LevelWarn, LevelError},
		schema.EnumOpts[Level]{Default: lo.ToPtr(LevelInfo)},
	),
}

// Debug logs a message at debug level using the singleton logger.
func Debug(msg string) {
	zap.S().Debug(msg)
}

// Debugf logs a message at debug level using the singleton logger.
func Debugf(msg string, args ...any) {
	zap.S().Debugf(msg, args...)
}

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Info logs a message at info level using the singleton logger.
func Info(msg string) {
	zap.S().Info(msg)
}

// Infof logs a message at info level using the singleton logger.
func Infof(msg string, args ...any) {
	zap.S().Infof(msg, args...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warn logs a message at warning level using the singleton logger.
func Warn(msg string) {
	zap.S().Warn(msg)
}

// Warnf logs a message at warning level using the singleton logger.
func Warnf(msg string, args ...any) {
	zap.S().Warnf(msg, args...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Error logs a message at error level using the singleton logger.
func Error(msg string) {
	zap.S().Error(msg)
}

// Errorf logs a message at error level using the singleton logger.
func Errorf(msg string, args ...any) {
	zap.S().Errorf(msg, args...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// NewLogr returns a logr.Logger which uses the zap singleton
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// Initialize creates and configures the appropriate logger from the live
// process environment. If UNSTRUCTURED_LOGS is truthy (the default), it
// outputs plain log messages with only time and level; otherwise it
// creates a standard structured logger. LOG_LEVEL selects the minimum
// level, defaulting to info.
func Initialize() {
	InitializeWithStore(&store.OSStore{})
}

// InitializeWithStore creates and configures the logger reading its
// settings through the given store. This allows dependency injection of
// environment variable access for testing.
func InitializeWithStore(st store.Store) {
	environment := typedenv.New(logConfig, typedenv.WithStore(st))

	var config zap.Config
	if unstructuredLogs(environment) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	config.Level = zap.NewAtomicLevelAt(logLevel(environment))
	zap.ReplaceGlobals(zap.Must(config.Build()))
}

func unstructuredLogs(environment *typedenv.Environment) bool {
	// Initialization must not fail on a malformed value; fall back to the
	// schema default.
	return typedenv.As[bool](environment.Get("UNSTRUCTURED_LOGS")).OrElse(true)
}

func logLevel(environment *typedenv.Environment) zapcore.Level {
	switch typedenv.As[Level](environment.Get("LOG_LEVEL")).OrElse(LevelInfo) {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
