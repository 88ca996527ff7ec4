/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package proc

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
	"github.com/metrolisboa/mlbot-runner/commonerrors/errortest"
)

func TestFindProcess(t *testing.T) {
	p, err := FindProcess(context.Background(), os.Getpid())
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), p.Pid())
	assert.NotEmpty(t, p.Name())
	assert.True(t, p.IsRunning())
}

func TestFindProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FindProcess(ctx, os.Getpid())
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
}

func TestIsProcessRunning(t *testing.T) {
	running, err := IsProcessRunning(context.Background(), os.Getpid())
	require.NoError(t, err)
	assert.True(t, running)

	// pids wrap around well below this value on all supported platforms
	running, err = IsProcessRunning(context.Background(), 1<<30)
	require.NoError(t, err)
	assert.False(t, running)
}
