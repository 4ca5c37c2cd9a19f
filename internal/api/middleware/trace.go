package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/motionfix-api/internal/api/shared"
	"github.com/phrazzld/motionfix-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and stores a
// request-scoped logger carrying it, so handlers and the error responders
// log with the same correlation attributes. It should be applied early in
// the middleware chain.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		// Build a request-scoped logger and make it available downstream
		log := slog.With("trace_id", traceID)
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		log.Debug("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start))
	})
}
