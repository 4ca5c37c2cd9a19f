package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "fresh context should carry no trace ID")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	assert.NotEmpty(t, traceID)
	assert.Len(t, traceID, 32, "trace ID should be 32 hex characters (16 bytes)")

	// SetTraceID derives a new context; the parent stays untouched
	assert.Empty(t, GetTraceID(ctx))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123) // Not a string

	assert.Empty(t, GetTraceID(ctx), "non-string value under the trace key reads as empty")
}

func TestGenerateTraceIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		traceID := generateTraceID()
		assert.Len(t, traceID, 32)
		assert.False(t, seen[traceID], "Trace IDs should be unique, got duplicate %s", traceID)
		seen[traceID] = true
	}
}

func TestGenerateFallbackTraceID(t *testing.T) {
	first := generateFallbackTraceID()
	second := generateFallbackTraceID()

	assert.Len(t, first, 32, "fallback trace ID should be 32 hex characters")
	assert.Len(t, second, 32)

	// The counter component keeps IDs distinct even within one clock tick
	assert.NotEqual(t, first, second)
}
