package controller

import (
	"net/http"

	"gympass/pkg/logger"

	"go.uber.org/zap"
)

// WithRecovery returns a middleware that recovers from panics in downstream
// handlers, logs them, and responds with 500 Internal Server Error.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				logger.Error(r.Context(), "panic in handler", zap.Any("panic", p))
				http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
