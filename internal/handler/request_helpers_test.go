package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// captureDebugLogs routes the default logger into a buffer for the duration of the test
func captureDebugLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLogRequestFields(t *testing.T) {
	t.Run("Logs action, route and fields at debug", func(t *testing.T) {
		buf := captureDebugLogs(t)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/items/abc", nil)

		logRequestFields(req, "Remove item", "item_id", "abc")

		out := buf.String()
		assert.Contains(t, out, LogMsgRequestDetails)
		assert.Contains(t, out, `action="Remove item"`)
		assert.Contains(t, out, "method=DELETE")
		assert.Contains(t, out, "path=/api/v1/items/abc")
		assert.Contains(t, out, "item_id=abc")
	})

	t.Run("Odd field count is reported instead", func(t *testing.T) {
		buf := captureDebugLogs(t)
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		logRequestFields(req, "Get item", "item_id")

		out := buf.String()
		assert.Contains(t, out, LogMsgOddRequestFields)
		assert.NotContains(t, out, LogMsgRequestDetails)
	})
}

func TestHandleAdvanceDay_LogsRequestedDays(t *testing.T) {
	InitValidator()
	buf := captureDebugLogs(t)

	svc := new(MockInventoryService)
	svc.On("AdvanceDays", mock.Anything, 4).Return(testReports(4), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/advance-day", strings.NewReader(`{"days":4}`))
	w := httptest.NewRecorder()
	HandleAdvanceDay(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), `action="Advance day"`)
	assert.Contains(t, buf.String(), "days=4")
}
