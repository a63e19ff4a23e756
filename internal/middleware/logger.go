package middleware

import (
	"net/http"

	"app/internal/logger"

	"github.com/google/uuid"
)

// LoggerMiddleware logs incoming HTTP requests with a per-request id.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		// Call the next handler in the chain
		next.ServeHTTP(w, r)

		logger := logger.New()
		logger.Debug().Str("request_id", requestID).Msgf("%s %s", r.Method, r.URL.RequestURI())
	})
}
