// Package middleware holds HTTP middleware specific to the flipwise API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/flipwise/flipwise/internal/api/shared"
	"github.com/flipwise/flipwise/internal/platform/logger"
)

// Trace returns middleware that stores a trace ID and a request-scoped
// logger carrying it in the request context. Mount it after chi's
// RequestID so the two IDs match.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			log := base.With(slog.String("trace_id", shared.GetTraceID(ctx)))
			ctx = logger.WithContext(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
