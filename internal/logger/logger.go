// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// ohpconfig.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain run-scoped
// loggers via FromContext.
//
// Log entries go to os.Stderr: stdout carries the generated configuration.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits of the log file written by [NewRotatingLogger].
const (
	maxFileSizeMB  = 10
	maxFileBackups = 3
	maxFileAgeDays = 28
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	// file is the rotated log file, nil when logging to stderr only.
	file io.Closer
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "ohpconfig", "resolver").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a "ts" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stderr in JSON format.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	setCallerFormat()

	return newLogger(os.Stderr, role)
}

// NewRotatingLogger constructs a *Logger that emits entries at or above
// level. When filePath is not empty the entries are written both to
// os.Stderr and to filePath, which is rotated by size.
//
// An empty level means "info". Returns an error for unknown levels.
// Call [Logger.Close] once logging is done to release the file.
func NewRotatingLogger(role, level, filePath string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(lvl)
	setCallerFormat()

	if filePath == "" {
		return newLogger(os.Stderr, role), nil
	}

	file := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxFileSizeMB,
		MaxBackups: maxFileBackups,
		MaxAge:     maxFileAgeDays,
		Compress:   true,
	}

	l := newLogger(io.MultiWriter(os.Stderr, file), role)
	l.file = file

	return l, nil
}

// Close closes the rotated log file of a logger built by
// [NewRotatingLogger]. It is a no-op for every other logger, including the
// children of a rotating logger, which share the parent's file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("error closing log file: %w", err)
	}

	return nil
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a
// zerolog level. The empty string maps to info.
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("error parsing log level %q: %w", level, err)
	}

	return lvl, nil
}

func setCallerFormat() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(out io.Writer, role string) *Logger {
	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithRole returns a child *Logger whose "role" field is replaced by role.
func (l *Logger) WithRole(role string) *Logger {
	return &Logger{Logger: l.With().Str("role", role).Logger()}
}

// WithStr returns a child *Logger that adds the string field key to every
// entry.
func (l *Logger) WithStr(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithContext attaches the logger to ctx so that [FromContext] can find it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, log.Ctx returns
// zerolog.DefaultContextLogger when it is set and a disabled logger
// otherwise, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
