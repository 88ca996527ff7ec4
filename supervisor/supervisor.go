/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package supervisor implements the run-forever loop keeping the bot alive.
//
// The loop launches one worker at a time, waits for it to exit, sleeps the
// configured interval and starts over. Shutdown is cooperative and
// non-destructive: when the context is cancelled while a worker runs, the
// supervisor waits for that worker's natural exit instead of killing it, so
// an in-flight status post is never interrupted. There is no forced-kill or
// timeout escalation path; a worker that never exits keeps the supervisor
// alive with it.
package supervisor

import (
	"context"
	"fmt"
	"time"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
	"github.com/metrolisboa/mlbot-runner/logs"
	"github.com/metrolisboa/mlbot-runner/parallelisation"
	"github.com/metrolisboa/mlbot-runner/worker"
)

type Supervisor struct {
	newWorker       func() *worker.Worker
	loggers         logs.Loggers
	preStart        func(context.Context) error
	postStart       func(context.Context) error
	postStop        func(error) error
	haltingErrors   []error
	restartInterval time.Duration
}

type SupervisorOption func(*Supervisor)

// NewSupervisor creates a supervisor launching workers created by workerFactory.
// The factory is called once per iteration so every launch gets a fresh handle;
// at most one worker is ever live at a time.
func NewSupervisor(workerFactory func() *worker.Worker, opts ...SupervisorOption) *Supervisor {
	supervisor := &Supervisor{
		newWorker:       workerFactory,
		loggers:         logs.NewNoopLogger(),
		restartInterval: 0,
	}
	for _, opt := range opts {
		opt(supervisor)
	}
	return supervisor
}

// WithRestartInterval sets the delay between a worker exit and the next launch.
func WithRestartInterval(delay time.Duration) SupervisorOption {
	return func(s *Supervisor) {
		s.restartInterval = delay
	}
}

// WithLoggers sets the loggers the supervisor reports its own lifecycle to.
func WithLoggers(loggers logs.Loggers) SupervisorOption {
	return func(s *Supervisor) {
		if loggers != nil {
			s.loggers = loggers
		}
	}
}

// WithPreStart registers a hook run before every worker launch. An error halts the loop.
func WithPreStart(function func(context.Context) error) SupervisorOption {
	return func(s *Supervisor) {
		s.preStart = function
	}
}

// WithPostStart registers a hook run after every successful worker launch. An error halts the loop.
func WithPostStart(function func(context.Context) error) SupervisorOption {
	return func(s *Supervisor) {
		s.postStart = function
	}
}

// WithPostStop registers a hook run with the worker's exit error after every exit. An error halts the loop.
func WithPostStop(function func(error) error) SupervisorOption {
	return func(s *Supervisor) {
		s.postStop = function
	}
}

// WithHaltingErrors lists worker exit errors which stop the loop instead of
// triggering a relaunch. By default, no worker failure is halting.
func WithHaltingErrors(errs ...error) SupervisorOption {
	return func(s *Supervisor) {
		s.haltingErrors = errs
	}
}

// Run keeps the worker running until the context is cancelled.
//
// Any worker exit, clean, crashed or failed to launch at all, triggers a
// relaunch after the restart interval; the exit status is logged and
// otherwise ignored. Run returns commonerrors.ErrCancelled (or ErrTimeout)
// once the context ends, and only after the worker live at that moment, if
// any, has exited on its own.
func (s *Supervisor) Run(ctx context.Context) (err error) {
	for {
		err = parallelisation.DetermineContextError(ctx)
		if err != nil {
			return
		}

		if s.preStart != nil {
			err = s.preStart(ctx)
			if err != nil {
				return
			}
		}

		w := s.newWorker()

		launchErr := w.Launch()
		if launchErr == nil && s.postStart != nil {
			err = s.postStart(ctx)
			if err != nil {
				return
			}
		}

		// Worker.Wait is idempotent; both arms may wait on the same process.
		var exitErr error
		select {
		case <-ctx.Done():
			if w.IsOn() {
				s.loggers.Log("Shutdown requested; waiting for the current worker run to finish")
			}
			exitErr = w.Wait()
			if s.postStop != nil {
				_ = s.postStop(exitErr)
			}
			s.loggers.Log("Supervisor stopped")
			return parallelisation.DetermineContextError(ctx)
		case <-w.Done():
			exitErr = w.Wait()
		}

		if s.postStop != nil {
			err = s.postStop(exitErr)
			if err != nil {
				return
			}
		}

		if exitErr != nil && commonerrors.Any(exitErr, s.haltingErrors...) {
			return exitErr
		}

		if s.restartInterval > 0 {
			s.loggers.Log(fmt.Sprintf("Relaunching worker in %v", s.restartInterval))
			parallelisation.SleepWithContext(ctx, s.restartInterval)
		}
	}
}
