// Package utils provides small helpers shared by the shell and the service
// layer: typed context keys and per-command trace ids.
package utils

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the trace id of one shell command
// in the context.
var TraceIDCtxKey = contextKey("traceID")

// NewTraceID returns a time-ordered UUIDv7, or a random UUIDv4 if the
// clock-based generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// WithTrace returns ctx carrying a fresh trace id and a child of log that
// stamps every event with it as "trace_id".
func WithTrace(ctx context.Context, log *logger.Logger) context.Context {
	traceID := NewTraceID()

	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	ctx = context.WithValue(ctx, TraceIDCtxKey, traceID)
	return l.WithContext(ctx)
}

// GetTraceIDFromContext retrieves the trace id stored by [WithTrace].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
