/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/metrolisboa/mlbot-runner/environment"
)

const (
	// EnvRunInterval is the delay in seconds between a worker exit and the next launch.
	EnvRunInterval = "RUN_INTERVAL"

	DefaultRunIntervalSeconds = 120
	DefaultWorkerCommand      = "python3 bot.py"

	LogStylePlain = "plain"
	LogStyleJSON  = "json"
)

// RunnerConfiguration describes the runner settings. All entries come from the
// environment; there are no command line arguments.
type RunnerConfiguration struct {
	// RunIntervalSeconds is read separately from the environment so that an
	// unset, unparseable or negative RUN_INTERVAL falls back to the default
	// instead of failing the load.
	RunIntervalSeconds int    `mapstructure:"-"`
	WorkerCommand      string `mapstructure:"run_command"`
	LogStyle           string `mapstructure:"log_style"`
	LogFile            string `mapstructure:"log_file"`
}

func (cfg *RunnerConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.RunIntervalSeconds, validation.Min(0)),
		validation.Field(&cfg.WorkerCommand, validation.Required),
		validation.Field(&cfg.LogStyle, validation.Required, validation.In(LogStylePlain, LogStyleJSON)),
	)
}

// RunInterval returns the delay between a worker exit and the next launch.
func (cfg *RunnerConfiguration) RunInterval() time.Duration {
	return time.Duration(cfg.RunIntervalSeconds) * time.Second
}

// WorkerCommandLine returns the worker executable and its arguments.
func (cfg *RunnerConfiguration) WorkerCommandLine() (cmd string, args []string) {
	fields := strings.Fields(cfg.WorkerCommand)
	if len(fields) == 0 {
		return
	}
	cmd = fields[0]
	args = fields[1:]
	return
}

// DefaultRunnerConfiguration returns the runner defaults.
func DefaultRunnerConfiguration() *RunnerConfiguration {
	return &RunnerConfiguration{
		RunIntervalSeconds: DefaultRunIntervalSeconds,
		WorkerCommand:      DefaultWorkerCommand,
		LogStyle:           LogStylePlain,
	}
}

// LoadRunnerConfiguration loads the runner configuration from the environment.
func LoadRunnerConfiguration() (cfg *RunnerConfiguration, err error) {
	cfg = &RunnerConfiguration{}
	err = Load("", cfg, DefaultRunnerConfiguration())
	if err != nil {
		return
	}
	interval := environment.GetEnvironmentVariableAsInt(EnvRunInterval, DefaultRunIntervalSeconds)
	if interval < 0 {
		interval = DefaultRunIntervalSeconds
	}
	cfg.RunIntervalSeconds = interval
	err = cfg.Validate()
	return
}
