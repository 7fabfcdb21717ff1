package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gympass/pkg/controller"
	"gympass/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(r *http.Request)
		expected string
	}{
		{
			name: "x-forwarded-for uses first hop",
			prepare: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
			},
			expected: "1.2.3.4",
		},
		{
			name: "x-real-ip",
			prepare: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "9.8.7.6")
			},
			expected: "9.8.7.6",
		},
		{
			name: "remote addr",
			prepare: func(r *http.Request) {
				r.RemoteAddr = "10.0.0.1:12345"
			},
			expected: "10.0.0.1",
		},
		{
			name: "invalid remote addr passes through",
			prepare: func(r *http.Request) {
				r.RemoteAddr = "not-an-addr"
			},
			expected: "not-an-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			require.Equal(t, tt.expected, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(controller.RequestIDKey).(string)
		w.WriteHeader(http.StatusCreated)
	})

	// request carrying its own ID keeps it
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Result().StatusCode)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Result().Header.Get("X-Request-Id"))

	// request without an ID gets a generated one
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	require.NotEmpty(t, seen)
	require.Equal(t, seen, rec.Result().Header.Get("X-Request-Id"))
}

func TestWithRecovery(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() {
		controller.WithRecovery(next).ServeHTTP(rec, req)
	})
	require.Equal(t, http.StatusInternalServerError, rec.Result().StatusCode)
}
