// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Setenv(EnvDebug, "")

	SetupLogger(true, false)
	assert.True(t, IsDebugEnabled())

	SetupLogger(false, false)
	assert.False(t, IsDebugEnabled())
}

func TestIsDebugEnabledEnvVar(t *testing.T) {
	SetupLogger(false, false)

	t.Setenv(EnvDebug, "true")
	assert.True(t, IsDebugEnabled(), "expected debug to be enabled via env var")

	t.Setenv(EnvDebug, "1")
	assert.False(t, IsDebugEnabled(), "only the literal true enables debug")

	t.Setenv(EnvDebug, "")
	assert.False(t, IsDebugEnabled())
}

func TestLogOutputText(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, false)
	t.Cleanup(func() { SetupLogger(false, false) })

	Logger().Debug("skipped process", "pid", 42)

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, "skipped process")
	assert.Contains(t, output, "pid=42")
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)
	t.Cleanup(func() { SetupLogger(false, false) })

	Logger().Info("snapshot complete", "records", 3)

	output := buf.String()
	assert.Contains(t, output, `"msg":"snapshot complete"`)
	assert.Contains(t, output, `"records":3`)
}

func TestLoggerIsDefault(t *testing.T) {
	SetupLogger(false, false)

	require.NotNil(t, Logger())
	assert.Same(t, Logger(), slog.Default())
}
