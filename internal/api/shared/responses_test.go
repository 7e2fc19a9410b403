package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLog returns a request whose context carries a trace ID and a
// logger writing text records to buf.
func requestWithLog(buf *strings.Builder) *http.Request {
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.WithValue(context.Background(), TraceIDKey, "test-trace-id")
	ctx = logger.WithContext(ctx, log)
	return httptest.NewRequest(http.MethodGet, "/api/decks", nil).WithContext(ctx)
}

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusCreated, map[string]any{"name": "Food", "words": 3})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Food", body["name"])
	assert.Equal(t, float64(3), body["words"])
}

func TestRespondWithJSON_EncodingError(t *testing.T) {
	var logBuf strings.Builder
	req := requestWithLog(&logBuf)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	var logBuf strings.Builder
	req := requestWithLog(&logBuf)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request", resp.Error)
	assert.Equal(t, "test-trace-id", resp.TraceID)
	assert.NotContains(t, w.Body.String(), "code")
}

func TestRespondWithError_NoTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Deck not found")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Deck not found", resp.Error)
	assert.Empty(t, resp.TraceID)
	assert.NotContains(t, w.Body.String(), "trace_id")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		level string
	}{
		{"server error", http.StatusInternalServerError, "level=ERROR"},
		{"capacity", http.StatusServiceUnavailable, "level=WARN"},
		{"client error", http.StatusBadRequest, "level=DEBUG"},
		{"not found", http.StatusNotFound, "level=DEBUG"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logBuf strings.Builder
			req := requestWithLog(&logBuf)
			w := httptest.NewRecorder()

			cause := errors.New("connect postgres://flipwise:s3cr3tpw@db:5432/flipwise refused")
			RespondWithErrorAndLog(w, req, tc.code, "Something went wrong", cause)

			assert.Equal(t, tc.code, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Something went wrong", resp.Error)
			assert.Equal(t, "test-trace-id", resp.TraceID)
			assert.NotContains(t, w.Body.String(), "postgres")

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, tc.level)
			assert.Contains(t, logOutput, "trace_id=test-trace-id")
			assert.Contains(t, logOutput, "error_type=")
			assert.NotContains(t, logOutput, "s3cr3tpw")
		})
	}
}
