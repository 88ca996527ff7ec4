/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/DeRuina/timberjack"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
)

const mib = 1024 * 1024

type FileLoggerOptions struct {
	maxFileSize float64
	maxAge      time.Duration
	maxBackups  int
}

type FileLoggerOption func(*FileLoggerOptions) *FileLoggerOptions

// WithMaxFileSize sets the maximum size in bytes of a log file before it gets rotated.
func WithMaxFileSize(maxFileSize float64) FileLoggerOption {
	return func(o *FileLoggerOptions) *FileLoggerOptions {
		if o == nil {
			return o
		}
		o.maxFileSize = maxFileSize
		return o
	}
}

// WithMaxAge sets the maximum duration old log files are retained.
func WithMaxAge(maxAge time.Duration) FileLoggerOption {
	return func(o *FileLoggerOptions) *FileLoggerOptions {
		if o == nil {
			return o
		}
		if maxAge >= time.Minute {
			o.maxAge = maxAge
		}
		return o
	}
}

// WithMaxBackups sets the maximum number of old log files to retain.
func WithMaxBackups(maxBackups int) FileLoggerOption {
	return func(o *FileLoggerOptions) *FileLoggerOptions {
		if o == nil {
			return o
		}
		o.maxBackups = maxBackups
		return o
	}
}

// NewFileLogger creates a rolling file logger using [timberjack](https://github.com/DeRuina/timberjack) under the bonnet.
func NewFileLogger(logFile string, loggerSource string, options ...FileLoggerOption) (loggers Loggers, err error) {
	opts := &FileLoggerOptions{
		maxFileSize: 100 * mib,
		maxAge:      24 * time.Hour,
		maxBackups:  3,
	}
	for i := range options {
		opts = options[i](opts)
	}
	if strings.TrimSpace(logFile) == "" {
		err = commonerrors.New(commonerrors.ErrInvalidDestination, "missing file destination")
		return
	}
	l := &timberjack.Logger{
		Filename:   logFile,
		MaxSize:    int(opts.maxFileSize / mib),
		MaxAge:     int(opts.maxAge.Hours() / 24),
		MaxBackups: opts.maxBackups,
		LocalTime:  false,
		Compress:   false,
	}
	loggers = &GenericLoggers{
		Output:    log.New(l, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
		Error:     log.New(l, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
		closeFunc: l.Close,
	}
	return
}
