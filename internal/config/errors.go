// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidType is reported for every value of the wrong type or shape,
// and for required values that are missing or empty.
// Match it with errors.Is; the concrete error is usually a [*TypeError].
var ErrInvalidType = errors.New("invalid configuration value")

// TypeError describes a single configuration value that failed decoding.
type TypeError struct {
	// Key is the path of the offending value, e.g. "retrieval_interval" or
	// "accounts[1].password".
	Key string

	// Want describes the accepted value, e.g. "an integer".
	Want string

	// Got describes what was found instead, e.g. "string" or "missing".
	Got string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("'%s' must be %s, got %s", e.Key, e.Want, e.Got)
}

// Is reports whether target is [ErrInvalidType].
func (e *TypeError) Is(target error) bool {
	return target == ErrInvalidType
}

const gotMissing = "missing"
