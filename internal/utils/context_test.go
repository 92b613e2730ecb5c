// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestTraceIDCtxKey(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestNewTraceID(t *testing.T) {
	a := NewTraceID()
	b := NewTraceID()

	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", a, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	traceID, ok := GetTraceIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false, got true")
	}
	if traceID != "" {
		t.Errorf("expected empty trace id, got %q", traceID)
	}
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	if _, ok := GetTraceIDFromContext(ctx); ok {
		t.Error("expected ok=false for a non-string value")
	}
}

func TestWithTrace(t *testing.T) {
	var buf bytes.Buffer
	base := &logger.Logger{Logger: zerolog.New(&buf)}

	ctx := WithTrace(context.Background(), base)

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID == "" {
		t.Fatal("expected a trace id in the context")
	}

	logger.FromContext(ctx).Info().Msg("hello")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("expected one json event, got %q: %v", buf.String(), err)
	}
	if event["trace_id"] != traceID {
		t.Errorf("expected trace_id %q, got %v", traceID, event["trace_id"])
	}
}
