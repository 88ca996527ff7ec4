/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"path/filepath"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLoggers(t *testing.T, loggers Loggers) {
	t.Helper()
	require.NoError(t, loggers.Check())
	loggers.Log(faker.Sentence())
	loggers.Log(faker.Word(), faker.Word())
	loggers.LogError(faker.Sentence())
	loggers.LogError(faker.Word(), faker.Word())
	require.NoError(t, loggers.Close())
}

func TestStdLogger(t *testing.T) {
	loggers, err := CreateStdLogger("Test")
	require.NoError(t, err)
	testLoggers(t, loggers)
}

func TestJSONLogger(t *testing.T) {
	loggers, err := NewJSONLoggerForWriter(&StringWriter{}, "Test", faker.Word())
	require.NoError(t, err)
	testLoggers(t, loggers)
}

func TestZapLogger(t *testing.T) {
	zapL, err := zap.NewDevelopment()
	require.NoError(t, err)
	loggers, err := NewZapLogger(zapL, "Test")
	require.NoError(t, err)
	require.NoError(t, loggers.Check())
	loggers.Log(faker.Sentence())
	loggers.LogError(faker.Sentence())
	// zap sync failures on stderr are environment dependent
	_ = loggers.Close()

	_, err = NewZapLogger(nil, "Test")
	assert.Error(t, err)
}

func TestLogrusLogger(t *testing.T) {
	loggers, err := NewLogrusLogger(logrus.New(), "Test")
	require.NoError(t, err)
	require.NoError(t, loggers.Check())
	loggers.Log(faker.Sentence())
	loggers.LogError(faker.Sentence())
}

func TestFileLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")
	loggers, err := NewFileLogger(logFile, "Test")
	require.NoError(t, err)
	testLoggers(t, loggers)

	_, err = NewFileLogger("", "Test")
	assert.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	testLoggers(t, NewNoopLogger())
}

func TestStringLogger(t *testing.T) {
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	require.NoError(t, loggers.Check())
	entry := faker.Sentence()
	loggers.Log(entry)
	assert.Contains(t, loggers.GetLogContent(), entry)
	entry = faker.Sentence()
	loggers.LogError(entry)
	assert.Contains(t, loggers.GetLogContent(), entry)
	require.NoError(t, loggers.Close())
	assert.Empty(t, loggers.GetLogContent())
}
