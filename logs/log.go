/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"log"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
)

// Definition of generic loggers over the standard library log package.
type GenericLoggers struct {
	Output    *log.Logger
	Error     *log.Logger
	closeFunc func() error
}

// Checks whether the loggers are correctly defined or not.
func (l *GenericLoggers) Check() error {
	if l.Error == nil || l.Output == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *GenericLoggers) SetLogSource(source string) error {
	return nil
}

func (l *GenericLoggers) SetLoggerSource(source string) error {
	return nil
}

// Logs to the output logger.
func (l *GenericLoggers) Log(output ...interface{}) {
	l.Output.Println(output...)
}

// Logs to the Error logger.
func (l *GenericLoggers) LogError(err ...interface{}) {
	l.Error.Println(err...)
}

// Closes the loggers.
func (l *GenericLoggers) Close() error {
	if l.closeFunc != nil {
		return l.closeFunc()
	}
	return nil
}
