// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stacklok/hubclean/env"
)

func TestInitializeWithEnv(t *testing.T) { //nolint:paralleltest // Replaces the global logger
	tests := []struct {
		name      string
		envValue  string
		debug     bool
		wantDebug bool
	}{
		{"defaults to unstructured info", "", false, false},
		{"structured logs", "false", false, false},
		{"debug enabled", "", true, true},
		{"structured debug", "false", true, true},
	}

	for _, tt := range tests { //nolint:paralleltest // Replaces the global logger
		t.Run(tt.name, func(t *testing.T) {
			InitializeWithEnv(env.MapReader{"UNSTRUCTURED_LOGS": tt.envValue}, tt.debug)

			require.NotNil(t, zap.L())
			got := zap.L().Core().Enabled(zap.DebugLevel)
			require.Equal(t, tt.wantDebug, got)
		})
	}
}

func TestUnstructuredLogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"unset defaults to true", "", true},
		{"explicit true", "true", true},
		{"explicit false", "false", false},
		{"garbage defaults to true", "not-a-bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := unstructuredLogs(env.MapReader{"UNSTRUCTURED_LOGS": tt.value})
			require.Equal(t, tt.want, got)
		})
	}
}
