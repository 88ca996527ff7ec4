/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package worker

import (
	"fmt"

	"go.uber.org/atomic"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
	"github.com/metrolisboa/mlbot-runner/logs"
)

// Object in charge of logging worker lifecycle events.
type workerMessaging struct {
	loggers     logs.Loggers
	commandPath string
	pid         atomic.Int64
}

// Logs worker launch.
func (m *workerMessaging) LogStart() {
	m.loggers.Log(fmt.Sprintf("Launching worker -> `%v`", m.commandPath))
}

// Logs when the worker failed to start.
func (m *workerMessaging) LogFailedStart(err error) {
	m.loggers.LogError(fmt.Sprintf("Failed starting worker `%v`: %v", m.commandPath, err))
}

// Logs when the worker has started.
func (m *workerMessaging) LogStarted() {
	m.loggers.Log(fmt.Sprintf("Started worker [%v]", m.pid.Load()))
}

// Logs worker end with err if an error occurred.
func (m *workerMessaging) LogEnd(err error) {
	if err == nil {
		m.loggers.Log(fmt.Sprintf("Worker [%v] ended successfully", m.pid.Load()))
	} else {
		m.loggers.LogError(fmt.Sprintf("Worker [%v] ended with failure:", m.pid.Load()), err)
	}
}

// Sets the worker PID.
func (m *workerMessaging) SetPid(pid int) {
	m.pid.Store(int64(pid))
}

func (m *workerMessaging) Check() (err error) {
	if m.loggers == nil {
		return commonerrors.ErrNoLogger
	}
	return m.loggers.Check()
}

func newWorkerMessaging(loggers logs.Loggers, commandPath string) *workerMessaging {
	return &workerMessaging{
		loggers:     loggers,
		commandPath: commandPath,
	}
}
