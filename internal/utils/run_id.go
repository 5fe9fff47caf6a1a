// Package utils holds small helpers shared by the check-in tooling.
package utils

import "github.com/google/uuid"

// NewRunID returns an identifier for the current process run.
// Version 7 UUIDs are time-ordered, so log lines from consecutive runs sort
// naturally; a random v4 is used if the v7 source fails.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
