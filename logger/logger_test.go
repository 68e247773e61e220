// SPDX-FileCopyrightText: Copyright 2026 Caleb Schmidt
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

	"github.com/calebschmidt/homefront/env"
	"github.com/calebschmidt/homefront/env/mocks"
)

func TestUnstructuredLogsCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		expected bool
	}{
		{"Default Case", "", true},
		{"Explicitly True", "true", true},
		{"Explicitly False", "false", false},
		{"Invalid Value", "not-a-bool", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockEnv := mocks.NewMockReader(ctrl)
			mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return(tt.envValue)

			assert.Equal(t, tt.expected, unstructuredLogs(mockEnv))
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		present  bool
		expected zapcore.Level
	}{
		{"Unset", "", false, zapcore.InfoLevel},
		{"Debug", "debug", true, zapcore.DebugLevel},
		{"Warn", "warn", true, zapcore.WarnLevel},
		{"Padded", " error ", true, zapcore.ErrorLevel},
		{"Invalid", "loud", true, zapcore.InfoLevel},
		{"Set But Empty", "", true, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockEnv := mocks.NewMockReader(ctrl)
			mockEnv.EXPECT().LookupEnv("LOG_LEVEL").Return(tt.envValue, tt.present)

			assert.Equal(t, tt.expected, logLevel(mockEnv))
		})
	}
}

func TestInitializeWithEnv(t *testing.T) { //nolint:paralleltest // Replaces the global logger
	tests := []struct {
		name      string
		vars      env.MapReader
		debugSeen bool
	}{
		{
			name:      "structured logs at default level drop debug",
			vars:      env.MapReader{"UNSTRUCTURED_LOGS": "false"},
			debugSeen: false,
		},
		{
			name:      "LOG_LEVEL=debug enables debug output",
			vars:      env.MapReader{"UNSTRUCTURED_LOGS": "false", "LOG_LEVEL": "debug"},
			debugSeen: true,
		},
	}

	for _, tt := range tests { //nolint:paralleltest // Replaces the global logger
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			InitializeWithEnv(tt.vars)
			enabled := zap.L().Core().Enabled(zapcore.DebugLevel)
			assert.Equal(t, tt.debugSeen, enabled)
		})
	}
}

func TestSingletonWrappers(t *testing.T) { //nolint:paralleltest // Replaces the global logger
	core, logs := observer.New(zapcore.DebugLevel)
	previous := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(previous)

	Debug("debug message")
	Debugf("debug %s", "formatted")
	Debugw("debug with fields", "key", "value")
	Info("info message")
	Infof("info %s", "formatted")
	Infow("info with fields", "key", "value")
	Warn("warn message")
	Warnf("warn %s", "formatted")
	Warnw("warn with fields", "key", "value")
	Error("error message")
	Errorf("error %s", "formatted")
	Errorw("error with fields", "key", "value")

	entries := logs.All()
	require.Len(t, entries, 12)

	assert.Equal(t, "debug message", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "debug formatted", entries[1].Message)
	assert.Equal(t, "info with fields", entries[5].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[5].Level)
	assert.Equal(t, "error message", entries[9].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[9].Level)

	fields := entries[11].ContextMap()
	assert.Equal(t, "value", fields["key"])
}

func TestNewLogr(t *testing.T) { //nolint:paralleltest // Replaces the global logger
	core, logs := observer.New(zapcore.InfoLevel)
	previous := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(previous)

	logr := NewLogr()
	logr.Info("via logr", "key", "value")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "via logr", entries[0].Message)
}
