/*
 * Copyright (C) 2024-2026 Metro Lisboa bot Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package environment provides helpers for reading and validating environment variables.
package environment

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/metrolisboa/mlbot-runner/commonerrors"
)

var (
	envvarKeyRegex   = regexp.MustCompile("^[a-zA-Z_][a-zA-Z0-9_]*$")
	errEnvvarInvalid = validation.NewError("validation_is_environment_variable", "must be a valid Posix environment variable")
)

type EnvVar struct {
	key   string
	value string
}

func (e *EnvVar) GetKey() string {
	return e.key
}

func (e *EnvVar) GetValue() string {
	return e.value
}

func (e *EnvVar) String() string {
	return fmt.Sprintf("%v=%v", e.GetKey(), e.GetValue())
}

func (e *EnvVar) Validate() (err error) {
	err = validation.Validate(e.GetKey(), validation.Required, validation.NewStringRuleWithError(isEnvVarKey, errEnvvarInvalid))
	if err != nil {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "environment variable name `%v` is not valid: %v", e.GetKey(), err.Error())
	}
	return
}

func isEnvVarKey(value string) bool {
	return envvarKeyRegex.MatchString(value)
}

// NewEnvVar returns an environment variable entry.
func NewEnvVar(key, value string) *EnvVar {
	return &EnvVar{key: key, value: value}
}

// ParseEnvironmentVariable parses an environment variable definition, in the form "key=value".
func ParseEnvironmentVariable(variable string) (*EnvVar, error) {
	key, value, found := strings.Cut(strings.TrimSpace(variable), "=")
	if !found {
		return nil, commonerrors.New(commonerrors.ErrInvalid, "invalid environment variable entry as not following key=value")
	}
	env := NewEnvVar(key, value)
	err := env.Validate()
	if err != nil {
		return nil, err
	}
	return env, nil
}

// GetEnvironmentVariable returns the value of the environment variable `key`.
// An ErrNotFound is returned if the variable is not set.
func GetEnvironmentVariable(key string) (value string, err error) {
	value, found := os.LookupEnv(key)
	if !found {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "environment variable `%v` is not set", key)
	}
	return
}

// GetEnvironmentVariableAsInt returns the value of the environment variable `key` as an integer.
// The default value is returned when the variable is unset or does not parse as an integer.
func GetEnvironmentVariableAsInt(key string, defaultValue int) int {
	raw, err := GetEnvironmentVariable(key)
	if err != nil {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue
	}
	return value
}
