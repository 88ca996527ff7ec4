/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package worker spawns the bot process and reports its completion.
//
// A Worker is deliberately not bound to a cancellable command context: the
// supervisor must never terminate the bot mid-run, so the only way a worker
// ends is by exiting on its own.
package worker

import (
	"os/exec"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
	"github.com/metrolisboa/mlbot-runner/logs"
)

// A Worker describes one run of the bot process.
type Worker struct {
	mu        deadlock.RWMutex
	cmd       *exec.Cmd
	loggers   logs.Loggers
	messaging *workerMessaging
	isRunning atomic.Bool
	pid       atomic.Int64
	exitErr   atomic.Error
	done      chan struct{}
}

// New creates a worker description for one run of `cmd` with `args`.
// The process inherits the full environment of the runner, credentials included.
func New(loggers logs.Loggers, cmd string, args ...string) *Worker {
	command := exec.Command(cmd, args...) //nolint:gosec
	command.Stdout = newOutStreamer(loggers)
	command.Stderr = newErrStreamer(loggers)
	return &Worker{
		cmd:       command,
		loggers:   loggers,
		messaging: newWorkerMessaging(loggers, command.Path),
		done:      make(chan struct{}),
	}
}

func (w *Worker) check() (err error) {
	if w.cmd == nil {
		return commonerrors.UndefinedVariable("command")
	}
	if w.messaging == nil {
		return commonerrors.ErrNoLogger
	}
	return w.messaging.Check()
}

// Check checks whether the worker is correctly defined.
func (w *Worker) Check() (err error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.check()
}

// IsOn states whether the worker process is running or not.
func (w *Worker) IsOn() bool {
	return w.isRunning.Load()
}

// Pid returns the process identifier of the launched worker.
func (w *Worker) Pid() (pid int, err error) {
	if p := w.pid.Load(); p != 0 {
		pid = int(p)
		return
	}
	err = commonerrors.UndefinedVariable("worker process")
	return
}

// Launch starts the worker process and returns without waiting for its completion.
// A failure to launch leaves the worker in the exited state.
func (w *Worker) Launch() (err error) {
	err = w.Check()
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.IsOn() {
		return commonerrors.New(commonerrors.ErrConflict, "worker is already started")
	}
	w.messaging.LogStart()
	err = w.cmd.Start()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrUnexpected, err, "failed starting worker")
		w.messaging.LogFailedStart(err)
		w.exitErr.Store(err)
		close(w.done)
		return
	}
	w.pid.Store(int64(w.cmd.Process.Pid))
	w.isRunning.Store(true)
	w.messaging.SetPid(w.cmd.Process.Pid)
	w.messaging.LogStarted()

	go func() {
		exitErr := w.cmd.Wait()
		w.isRunning.Store(false)
		w.exitErr.Store(exitErr)
		w.messaging.LogEnd(exitErr)
		close(w.done)
	}()
	return
}

// Wait blocks until the worker process has exited naturally and returns its
// exit error, nil on success. It is safe to call from several goroutines and
// more than once; every call reports the same outcome.
func (w *Worker) Wait() error {
	<-w.done
	return w.exitErr.Load()
}

// Done returns a channel closed once the worker has exited.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}
