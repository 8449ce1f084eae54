package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPinger mocks a store ping
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{"Store reachable", nil, http.StatusOK, `"status":"ok"`},
		{"Store failure", assert.AnError, http.StatusServiceUnavailable, `"message":"store connection failed"`},
		{"Store timeout", context.DeadlineExceeded, http.StatusServiceUnavailable, `"status":"unavailable"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockPinger)
			store.On("Ping", mock.Anything).Return(tt.pingErr)

			w := httptest.NewRecorder()
			HandleReadyz(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			store.AssertExpectations(t)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "1.4.2")

	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.4.2"`)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)
}

func TestGetVersionInfo(t *testing.T) {
	restore := Version
	t.Cleanup(func() { Version = restore })

	t.Run("Build-time version wins over VERSION", func(t *testing.T) {
		Version = "2.0.0"
		t.Setenv("VERSION", "from-env")
		assert.Equal(t, "2.0.0", getVersionInfo())
	})

	t.Run("VERSION fills in for a dev build", func(t *testing.T) {
		Version = "dev"
		t.Setenv("VERSION", "from-env")
		assert.Equal(t, "from-env", getVersionInfo())
	})

	t.Run("Falls back to dev", func(t *testing.T) {
		Version = "dev"
		t.Setenv("VERSION", "")
		assert.Equal(t, "dev", getVersionInfo())
	})
}
