/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package proc provides process table lookups for supervised workers.
package proc

import (
	"context"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
	"github.com/metrolisboa/mlbot-runner/parallelisation"
)

type IProcess interface {
	Pid() int
	Name() string
	Cmdline() string
	IsRunning() bool
}

// FindProcess looks up a single process by pid.
//
// Process will be nil and error will be commonerrors.ErrNotFound if a matching process is
// not found.
func FindProcess(ctx context.Context, pid int) (p IProcess, err error) {
	err = parallelisation.DetermineContextError(ctx)
	if err != nil {
		return
	}
	imp, subErr := process.NewProcessWithContext(ctx, int32(pid))
	if subErr != nil {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "process (#%v) could not be found: %v", pid, subErr.Error())
		return
	}
	p = &ps{imp: imp}
	return
}

// IsProcessRunning states whether a process is running or not. An error is returned if the context is Done while looking for the process state.
func IsProcessRunning(ctx context.Context, pid int) (running bool, err error) {
	err = parallelisation.DetermineContextError(ctx)
	if err != nil {
		return
	}
	p, subErr := FindProcess(ctx, pid)
	switch {
	case subErr == nil:
		running = p.IsRunning()
	case commonerrors.Any(subErr, commonerrors.ErrTimeout, commonerrors.ErrCancelled):
		err = subErr
	default:
		running = false
	}
	return
}

type ps struct {
	imp *process.Process
}

func (p *ps) Pid() int {
	return int(p.imp.Pid)
}

func (p *ps) Name() string {
	name, _ := p.imp.Name()
	return name
}

func (p *ps) Cmdline() string {
	cmd, _ := p.imp.Cmdline()
	return cmd
}

func (p *ps) IsRunning() bool {
	running, err := p.imp.IsRunning()
	if err != nil {
		return false
	}
	return running
}
