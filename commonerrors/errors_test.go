/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrCancelled, ErrTimeout, ErrCancelled))
	assert.True(t, Any(fmt.Errorf("%w: %v", ErrCancelled, faker.Sentence()), ErrCancelled))
	assert.False(t, Any(ErrCancelled, ErrTimeout, ErrConflict))
	assert.True(t, Any(nil, nil))
	assert.False(t, Any(nil, ErrUndefined))
}

func TestNone(t *testing.T) {
	assert.True(t, None(ErrCancelled, ErrTimeout, ErrConflict))
	assert.False(t, None(fmt.Errorf("%w: %v", ErrTimeout, faker.Word()), ErrTimeout))
}

func TestIgnore(t *testing.T) {
	assert.NoError(t, Ignore(ErrCancelled, ErrCancelled))
	assert.Error(t, Ignore(ErrCancelled, ErrTimeout))
}

func TestCorrespondTo(t *testing.T) {
	assert.True(t, CorrespondTo(errors.New("There was a FAILURE"), "failure"))
	assert.False(t, CorrespondTo(nil, "failure"))
	assert.False(t, CorrespondTo(errors.New("all good"), "failure"))
}

func TestNewf(t *testing.T) {
	err := Newf(ErrInvalid, "value `%v` is not acceptable", faker.Word())
	assert.True(t, Any(err, ErrInvalid))
	err = UndefinedVariable("command")
	assert.True(t, Any(err, ErrUndefined))
	assert.Contains(t, err.Error(), "command")
}

func TestConvertContextError(t *testing.T) {
	assert.NoError(t, ConvertContextError(nil))
	assert.True(t, Any(ConvertContextError(context.Canceled), ErrCancelled))
	assert.True(t, Any(ConvertContextError(context.DeadlineExceeded), ErrTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	assert.NoError(t, ErrFromContext(ctx))
	cancel()
	assert.True(t, Any(ErrFromContext(ctx), ErrCancelled))
}
