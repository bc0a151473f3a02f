package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(prometheus.NewRegistry()).Handle
	e.Use(RequestID(), RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return errors.New("store exploded")
	})

	testCases := []struct {
		path   string
		status int
		level  string
	}{
		{"/ok", http.StatusOK, "INFO"},
		{"/fail", http.StatusInternalServerError, "ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			buf.Reset()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set(TraceIDHeader, "log-trace")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "request", entry["msg"])
			assert.Equal(t, tc.level, entry["level"])
			assert.Equal(t, "log-trace", entry["trace_id"])
			assert.Equal(t, float64(tc.status), entry["status"])
			assert.Equal(t, tc.path, entry["path"])
		})
	}
}
