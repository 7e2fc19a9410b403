package shared

import (
	"context"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// ContextKey is the type of request context keys owned by the API.
type ContextKey string

// TraceIDKey is the context key for the request trace ID.
const TraceIDKey ContextKey = "traceID"

// SetTraceID stores a trace ID in ctx. The chi request ID is reused when
// present so that access logs and error responses correlate; otherwise a
// random 32 character hex ID is generated.
func SetTraceID(ctx context.Context) context.Context {
	traceID := chimw.GetReqID(ctx)
	if traceID == "" {
		traceID = newTraceID()
	}
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID returns the trace ID stored in ctx, or "".
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func newTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
