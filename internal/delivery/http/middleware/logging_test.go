package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingHandler records the last log record for assertions.
type capturingHandler struct {
	record slog.Record
}

func (h *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.record = r.Clone()
	return nil
}

func (h *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *capturingHandler) WithGroup(_ string) slog.Handler { return h }

func recordAttrs(r slog.Record) map[string]slog.Value {
	attrs := make(map[string]slog.Value)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	return attrs
}

func TestLoggingMiddleware(t *testing.T) {
	var cap capturingHandler
	logger := slog.New(&cap)

	tests := []struct {
		name          string
		handlerStatus int
		body          string
		path          string
		method        string
	}{
		{"ok status", http.StatusOK, "a,b\n", "/listall", http.MethodGet},
		{"unauthorized", http.StatusUnauthorized, "no", "/listall", http.MethodGet},
		{"server error", http.StatusInternalServerError, "", "/mcp", http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.body))
			})
			handler := RequestID(LoggingMiddleware(logger, next))
			req := httptest.NewRequest(tt.method, "http://test"+tt.path+"?secret=hunter2", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, "request", cap.record.Message)
			attrs := recordAttrs(cap.record)
			require.Contains(t, attrs, "method")
			require.Contains(t, attrs, "path")
			require.Contains(t, attrs, "status")
			require.Contains(t, attrs, "duration_ms")
			require.Contains(t, attrs, "request_id")
			require.Equal(t, tt.method, attrs["method"].String())
			require.Equal(t, tt.path, attrs["path"].String())
			require.Equal(t, int64(tt.handlerStatus), attrs["status"].Int64())
			require.Equal(t, int64(len(tt.body)), attrs["bytes"].Int64())
			require.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
			require.Equal(t, rr.Header().Get(RequestIDHeader), attrs["request_id"].String())
			require.Equal(t, tt.handlerStatus, rr.Code)
			for _, v := range attrs {
				assert.NotContains(t, v.String(), "hunter2")
			}
		})
	}
}

func TestLoggingMiddleware_Flush(t *testing.T) {
	logger := slog.New(&capturingHandler{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		require.True(t, ok, "wrapped writer must implement http.Flusher")
		_, _ = w.Write([]byte("event: endpoint\n\n"))
		f.Flush()
	})
	rr := httptest.NewRecorder()

	LoggingMiddleware(logger, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://test/sse", nil))

	assert.True(t, rr.Flushed)
}
