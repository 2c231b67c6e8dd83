package middleware

import (
	"net/http"
	"time"

	"vet-records/internal/platform/logger"
)

// RequestLogger loguea cada request al terminar. Nivel según status:
// info (<400), warn (4xx), error (5xx).
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newStatusRecorder(w)

			next.ServeHTTP(wrapped, r)

			lvl := logger.Info
			switch {
			case wrapped.status >= 500:
				lvl = logger.Error
			case wrapped.status >= 400:
				lvl = logger.Warn
			}

			log.Log(r.Context(), lvl, "http request", map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      wrapped.status,
				"duration_ms": time.Since(start).Milliseconds(),
				"bytes":       wrapped.written,
				"remote_addr": r.RemoteAddr,
				"request_id":  GetRequestID(r.Context()),
			})
		})
	}
}
