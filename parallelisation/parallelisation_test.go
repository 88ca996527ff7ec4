/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
	"github.com/metrolisboa/mlbot-runner/commonerrors/errortest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSleepWithInterruption(t *testing.T) {
	tests := []struct {
		name  string
		sleep func(context.Context, time.Duration, chan time.Duration)
	}{
		{
			name: "Sleep with interruption",
			sleep: func(ctx context.Context, duration time.Duration, wait chan time.Duration) {
				start := time.Now()
				stop := make(chan bool, 1)
				go func(ctx context.Context, stop chan bool) {
					<-ctx.Done()
					stop <- true
				}(ctx, stop)
				SleepWithInterruption(stop, duration)
				wait <- time.Since(start)
			},
		},
		{
			name: "Sleep with context",
			sleep: func(ctx context.Context, duration time.Duration, wait chan time.Duration) {
				start := time.Now()
				SleepWithContext(ctx, duration)
				wait <- time.Since(start)
			},
		},
	}

	testSleep := func(t *testing.T, sleep func(context.Context, time.Duration, chan time.Duration)) {
		times := make(chan time.Duration)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		timeToSleep := 100 * time.Millisecond
		go sleep(ctx, timeToSleep, times)
		timeSlept := <-times
		assert.GreaterOrEqual(t, timeSlept.Milliseconds(), timeToSleep.Milliseconds())
		timeToSleep = time.Hour
		go sleep(ctx, timeToSleep, times)
		time.Sleep(time.Millisecond)
		cancel()
		timeSlept = <-times
		assert.Less(t, timeSlept.Milliseconds(), timeToSleep.Milliseconds())
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			testSleep(t, test.sleep)
		})
	}
}

func TestDetermineContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, DetermineContextError(ctx))
	cancel()
	errortest.AssertError(t, DetermineContextError(ctx), commonerrors.ErrCancelled)

	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel2()
	time.Sleep(5 * time.Millisecond)
	errortest.AssertError(t, DetermineContextError(ctx2), commonerrors.ErrTimeout)
}

type testWaiter struct {
	release chan struct{}
}

func (w *testWaiter) Wait() error {
	<-w.release
	return nil
}

func TestWaitWithContext(t *testing.T) {
	t.Run("completes", func(t *testing.T) {
		w := &testWaiter{release: make(chan struct{})}
		close(w.release)
		require.NoError(t, WaitWithContext(context.Background(), w))
	})
	t.Run("cancelled", func(t *testing.T) {
		w := &testWaiter{release: make(chan struct{})}
		defer close(w.release)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		errortest.AssertError(t, WaitWithContext(ctx, w), commonerrors.ErrTimeout)
	})
}
