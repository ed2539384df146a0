// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the vault server and its storage layers.
//
// Every line is JSON with a "role" field naming the component, a timestamp
// and a "func" field with the calling function. Request-scoped loggers travel
// in the context; see [Logger.WithTraceID], [FromContext] and [FromRequest].
//
// Secrets never go through the logger: callers log paths and counts only.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

var setupGlobals sync.Once

// NewLogger returns a logger for role writing to os.Stdout.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// New returns a logger for role writing JSON lines to w.
//
// The first call sets zerolog's process-wide options: debug level and a
// caller field named "func" holding the function name instead of file:line.
func New(role string, w io.Writer) *Logger {
	setupGlobals.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child logger that stamps every line with trace_id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx by zerolog's WithContext. A
// context without one yields zerolog's default context logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
