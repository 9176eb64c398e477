package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestObserver recibe cada request terminado (lo implementa platform/metrics).
type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

// Metrics etiqueta por patrón de ruta de chi ("/fish/{fishID}") y no por path,
// para no explotar la cardinalidad.
func Metrics(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			obs.ObserveRequest(route, r.Method, status, time.Since(start))
		})
	}
}
