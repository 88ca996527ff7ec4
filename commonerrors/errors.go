/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error taxonomy used across the project.
// Errors should be checked against these sentinels with Any/None rather than
// compared by string.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoLogger           = errors.New("missing logger")
	ErrNoLoggerSource     = errors.New("missing logger source")
	ErrNoLogSource        = errors.New("missing log source")
	ErrUndefined          = errors.New("undefined")
	ErrInvalid            = errors.New("invalid")
	ErrInvalidDestination = errors.New("invalid destination")
	ErrTimeout            = errors.New("timeout")
	ErrCancelled          = errors.New("cancelled")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrUnexpected         = errors.New("unexpected")
	ErrUnknown            = errors.New("unknown")
	ErrMarshalling        = errors.New("unserialisable")
	ErrCondition          = errors.New("failed condition")
)

// Any states whether the target error matches any of the errors `err`.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None states whether the target error matches none of the errors `err`.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// Ignore returns nil if the target error matches any of the errors `err`, the target error otherwise.
func Ignore(target error, err ...error) error {
	if Any(target, err...) {
		return nil
	}
	return target
}

// CorrespondTo states whether the error description contains any of the descriptions (case insensitive).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// New returns an error wrapping the sentinel `err` with a description.
func New(err error, description string) error {
	return fmt.Errorf("%w: %v", err, description)
}

// Newf is similar to New but supports format directives.
func Newf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %v", err, fmt.Sprintf(format, args...))
}

// WrapError wraps an error `wrappedErr` with the sentinel `err` and a message unless it already matches the sentinel.
func WrapError(err error, wrappedErr error, msg string) error {
	if wrappedErr == nil {
		return nil
	}
	if Any(wrappedErr, err) {
		return wrappedErr
	}
	if msg == "" {
		return fmt.Errorf("%w: %v", err, wrappedErr.Error())
	}
	return fmt.Errorf("%w: %v: %v", err, msg, wrappedErr.Error())
}

// UndefinedVariable returns an ErrUndefined about the variable name.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "missing %v", variableName)
}
