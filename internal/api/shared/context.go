package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"sync/atomic"
	"time"
)

// ContextKey is the key type for context values set by the API layer.
type ContextKey string

const (
	// TraceIDKey holds the per-request trace ID
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is how many random bytes make up a trace ID
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID stamps a fresh trace ID onto the context so log lines and
// error responses for the same request can be correlated.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the trace ID stored on the context, or the empty
// string when the request has none.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random trace ID for request tracking.
// Returns a 32-character hex string (16 bytes). If crypto/rand fails, falls
// back to a time-based alternative, but never returns a static value.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		slog.Error("crypto/rand unavailable for trace ID, using time-based fallback",
			"error", err)
		return generateFallbackTraceID()
	}

	return hex.EncodeToString(b)
}

// fallbackCounter distinguishes fallback IDs minted inside the same
// nanosecond tick.
var fallbackCounter atomic.Uint32

// generateFallbackTraceID creates a trace ID from a timestamp and a process
// counter when the crypto/rand source fails. Less unique than a random ID
// but enough to keep request correlation working.
func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)

	binary.BigEndian.PutUint64(fallbackID[:8], uint64(time.Now().UnixNano()))
	binary.BigEndian.PutUint32(fallbackID[8:12], fallbackCounter.Add(1))
	binary.BigEndian.PutUint32(fallbackID[12:16], uint32(time.Now().Nanosecond()))

	return hex.EncodeToString(fallbackID)
}
