// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across crmsync. The wrapper embeds zerolog.Logger so the full
// zerolog API stays available on *Logger.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs the client logger for the given role label (e.g. "crmsync",
// "worker"). Output is JSON written to a "logs" file beside the executable so
// background sync activity never interleaves with the terminal UI; if the
// file cannot be opened it falls back to stdout.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func New(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	out, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		out = os.Stdout
	}

	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithComponent returns a child logger tagged with a "component" field.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// FromContext extracts the zerolog.Logger attached to ctx via zerolog's
// WithContext and returns it as a *Logger. Falls back to zerolog's global
// logger when ctx carries none, so it never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
