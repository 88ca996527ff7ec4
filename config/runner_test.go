/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunnerConfigurationDefaults(t *testing.T) {
	cfg, err := LoadRunnerConfiguration()
	require.NoError(t, err)
	assert.Equal(t, DefaultRunIntervalSeconds, cfg.RunIntervalSeconds)
	assert.Equal(t, 120*time.Second, cfg.RunInterval())
	assert.Equal(t, DefaultWorkerCommand, cfg.WorkerCommand)
	assert.Equal(t, LogStylePlain, cfg.LogStyle)
	assert.Empty(t, cfg.LogFile)

	cmd, args := cfg.WorkerCommandLine()
	assert.Equal(t, "python3", cmd)
	assert.Equal(t, []string{"bot.py"}, args)
}

func TestLoadRunnerConfigurationFromEnvironment(t *testing.T) {
	t.Setenv(EnvRunInterval, "5")
	t.Setenv("RUN_COMMAND", "/usr/local/bin/mlbot --once")
	t.Setenv("LOG_STYLE", LogStyleJSON)
	t.Setenv("LOG_FILE", "/var/log/mlbot.log")

	cfg, err := LoadRunnerConfiguration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.RunInterval())
	assert.Equal(t, LogStyleJSON, cfg.LogStyle)
	assert.Equal(t, "/var/log/mlbot.log", cfg.LogFile)

	cmd, args := cfg.WorkerCommandLine()
	assert.Equal(t, "/usr/local/bin/mlbot", cmd)
	assert.Equal(t, []string{"--once"}, args)
}

func TestLoadRunnerConfigurationInvalidInterval(t *testing.T) {
	t.Run("not an integer", func(t *testing.T) {
		t.Setenv(EnvRunInterval, faker.Word())
		cfg, err := LoadRunnerConfiguration()
		require.NoError(t, err)
		assert.Equal(t, DefaultRunIntervalSeconds, cfg.RunIntervalSeconds)
	})
	t.Run("negative", func(t *testing.T) {
		t.Setenv(EnvRunInterval, "-45")
		cfg, err := LoadRunnerConfiguration()
		require.NoError(t, err)
		assert.Equal(t, DefaultRunIntervalSeconds, cfg.RunIntervalSeconds)
	})
	t.Run("zero is valid", func(t *testing.T) {
		t.Setenv(EnvRunInterval, "0")
		cfg, err := LoadRunnerConfiguration()
		require.NoError(t, err)
		assert.Zero(t, cfg.RunIntervalSeconds)
	})
}

func TestRunnerConfigurationValidation(t *testing.T) {
	cfg := DefaultRunnerConfiguration()
	require.NoError(t, cfg.Validate())

	cfg.WorkerCommand = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultRunnerConfiguration()
	cfg.LogStyle = faker.Word()
	assert.Error(t, cfg.Validate())
}
