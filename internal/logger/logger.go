// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// mood-journal service.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Option customises a logger built by NewLogger.
type Option func(*options)

type options struct {
	level zerolog.Level
	file  string
}

// WithLevel sets the global level from its textual name ("debug", "info", ...).
// Unknown names leave the default (debug) in place.
func WithLevel(level string) Option {
	return func(o *options) {
		if parsed, err := zerolog.ParseLevel(level); err == nil && level != "" {
			o.level = parsed
		}
	}
}

// WithFile duplicates the output into a size-rotated file at path.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// NewLogger constructs a *Logger for the given role label (e.g. "server").
//
// The logger is configured with:
//   - global log level Debug unless WithLevel says otherwise;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field with the fully-qualified function name.
//
// Output is JSON on os.Stdout, plus a rotated file when WithFile is given.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{level: zerolog.DebugLevel}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.SetGlobalLevel(o.level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	var out io.Writer = os.Stdout
	if o.file != "" {
		out = io.MultiWriter(os.Stdout, newRotatingFile(o.file))
	}

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
