/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
)

// JSONLoggers defines structured JSON loggers over zerolog.
type JSONLoggers struct {
	mu           sync.RWMutex
	source       string
	loggerSource string
	zerologger   zerolog.Logger
}

func (l *JSONLoggers) SetLogSource(source string) error {
	if source == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	return nil
}

func (l *JSONLoggers) SetLoggerSource(source string) error {
	if source == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loggerSource = source
	return nil
}

func (l *JSONLoggers) GetSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

func (l *JSONLoggers) GetLoggerSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loggerSource
}

// Check checks whether the logger is correctly defined or not.
func (l *JSONLoggers) Check() error {
	if l.GetLoggerSource() == "" {
		return commonerrors.ErrNoLoggerSource
	}
	return nil
}

func (l *JSONLoggers) Configure() error {
	zerolog.TimestampFieldName = "ctime"
	zerolog.MessageFieldName = "message"
	zerolog.LevelFieldName = "severity"
	l.zerologger = l.zerologger.With().Timestamp().Logger()
	return nil
}

// Log logs to the output stream.
func (l *JSONLoggers) Log(output ...interface{}) {
	if len(output) == 1 && output[0] == "\n" {
		return
	}
	l.zerologger.Info().Str(KeyLoggerSource, l.GetLoggerSource()).Str(KeyLogSource, l.GetSource()).Msg(fmt.Sprint(output...))
}

// LogError logs to the error stream.
func (l *JSONLoggers) LogError(err ...interface{}) {
	if len(err) == 1 && err[0] == "\n" {
		return
	}
	l.zerologger.Error().Str(KeyLoggerSource, l.GetLoggerSource()).Str(KeyLogSource, l.GetSource()).Msg(fmt.Sprint(err...))
}

func (l *JSONLoggers) Close() error {
	return nil
}

// NewJSONLoggerForWriter creates JSON loggers writing to the writer provided.
func NewJSONLoggerForWriter(writer io.Writer, loggerSource string, source string) (loggers *JSONLoggers, err error) {
	loggers = &JSONLoggers{
		source:       source,
		loggerSource: loggerSource,
		zerologger:   zerolog.New(writer),
	}
	err = loggers.Configure()
	if err != nil {
		return
	}
	err = loggers.Check()
	return
}

// NewJSONLogger creates JSON loggers to standard output.
func NewJSONLogger(loggerSource string, source string) (loggers Loggers, err error) {
	return NewJSONLoggerForWriter(os.Stdout, loggerSource, source)
}
