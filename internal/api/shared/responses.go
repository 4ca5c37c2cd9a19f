package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/motionfix-api/internal/platform/logger"
)

// ErrorResponse is the JSON body returned for every error status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON encodes data as the body of a JSON response with the
// given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).ErrorContext(r.Context(),
			"failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message. The trace ID from the request context rides along when one is
// present.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrorAndLog(w, r, status, message, nil)
}

// RespondWithErrorAndLog writes a JSON error response and logs the detailed
// error alongside it. The raw error only ever appears in the log; the client
// sees the sanitized message.
//
// Log level strategy: 5xx errors are logged at ERROR level, everything else
// at DEBUG level.
func RespondWithErrorAndLog(
	w http.ResponseWriter, r *http.Request, status int, userMessage string, err error,
) {
	ctx := r.Context()
	traceID := GetTraceID(ctx)

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	kv := []any{
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method,
		"status_code", status,
		"user_message", userMessage,
	}
	if err != nil {
		kv = append(kv, "error", err.Error(), "error_type", fmt.Sprintf("%T", err))
	}
	logger.FromContextOrDefault(ctx, nil).Log(ctx, level, "API error response", kv...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
	})
}
