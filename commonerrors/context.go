/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package commonerrors

import "context"

// ConvertContextError converts a context error into one of the sentinel errors of this package.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if Any(err, context.Canceled) {
		return ErrCancelled
	}
	if Any(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// ErrFromContext returns the error corresponding to the state of the context, nil if the context is still valid.
func ErrFromContext(ctx context.Context) error {
	return ConvertContextError(ctx.Err())
}
