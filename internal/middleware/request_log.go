package middleware

import (
	"net/http"
	"time"

	"fishing-finder/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog loguea cada request al terminar, con el request id de chi.
// Va después de chimw.RequestID en la cadena.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := map[string]any{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}

			switch {
			case status >= 500:
				log.Error("request", fields)
			case status >= 400:
				log.Warn("request", fields)
			default:
				log.Debug("request", fields)
			}
		})
	}
}
