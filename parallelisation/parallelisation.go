/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package parallelisation provides context aware helpers for sleeping and waiting.
package parallelisation

import (
	"context"
	"time"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
)

// DetermineContextError determines what the context error is if any.
func DetermineContextError(ctx context.Context) error {
	return commonerrors.ErrFromContext(ctx)
}

// SleepWithContext performs an interruptable sleep.
// The sleep ends as soon as the context is cancelled.
func SleepWithContext(ctx context.Context, delay time.Duration) {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// SleepWithInterruption performs an interruptable sleep.
// The sleep ends as soon as a message is received on the stop channel.
func SleepWithInterruption(stop chan bool, delay time.Duration) {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-stop:
	case <-timer.C:
	}
}
