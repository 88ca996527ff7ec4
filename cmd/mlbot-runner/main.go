/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// mlbot-runner keeps the Metro Lisboa status bot running forever.
//
// It launches the bot process, waits for it to exit, sleeps RUN_INTERVAL
// seconds and launches it again. On SIGHUP, SIGINT or SIGTERM it lets the
// current bot run finish before exiting, so a status post is never cut short.
// All settings come from the environment; no command line arguments are read.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
	"github.com/metrolisboa/mlbot-runner/config"
	"github.com/metrolisboa/mlbot-runner/logs"
	"github.com/metrolisboa/mlbot-runner/supervisor"
	"github.com/metrolisboa/mlbot-runner/worker"
)

const loggerSource = "mlbot-runner"

func newLoggers(cfg *config.RunnerConfiguration) (loggers logs.Loggers, err error) {
	if cfg.LogFile != "" {
		return logs.NewFileLogger(cfg.LogFile, loggerSource)
	}
	if cfg.LogStyle == config.LogStyleJSON {
		cmd, _ := cfg.WorkerCommandLine()
		return logs.NewJSONLogger(loggerSource, cmd)
	}
	return logs.CreateStdLogger(loggerSource)
}

func run() error {
	cfg, err := config.LoadRunnerConfiguration()
	if err != nil {
		return err
	}
	loggers, err := newLoggers(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = loggers.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd, args := cfg.WorkerCommandLine()
	runner := supervisor.NewSupervisor(func() *worker.Worker {
		return worker.New(loggers, cmd, args...)
	},
		supervisor.WithLoggers(loggers),
		supervisor.WithRestartInterval(cfg.RunInterval()),
	)

	err = runner.Run(ctx)
	// context cancellation is the graceful shutdown path and exits cleanly
	return commonerrors.Ignore(err, commonerrors.ErrCancelled, commonerrors.ErrTimeout)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mlbot-runner: %v\n", err)
		os.Exit(1)
	}
}
