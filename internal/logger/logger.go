// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used by the check-in tooling.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer.
package logger

import (
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-checkin/internal/utils"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "checkin-config") writing JSON lines to os.Stderr.
//
// The logger is configured with:
//   - Info as the minimum level (see [Logger.Verbose]);
//   - a "role" field set to role;
//   - a "run_id" field unique to the process, so lines of a single run can
//     be grouped;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     instead of the default file:line format.
//
// Standard output is left free for command output.
func NewLogger(role string) *Logger {
	return New(os.Stderr, role)
}

// New is [NewLogger] writing to w.
func New(w io.Writer, role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(zerolog.InfoLevel).With().
		Str("role", role).
		Str("run_id", utils.NewRunID()).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Verbose returns a copy of the logger that emits Debug entries when v is
// true and stays at Info otherwise.
func (l *Logger) Verbose(v bool) *Logger {
	if v {
		return &Logger{l.Level(zerolog.DebugLevel)}
	}
	return &Logger{l.Level(zerolog.InfoLevel)}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}
