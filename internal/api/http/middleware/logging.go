package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/authcore/internal/logger"
)

// RequestObserver receives the latency of every served request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// unmatchedRoute labels requests that matched no route, keeping the label
// set bounded.
const unmatchedRoute = "not_found"

// Logging logs every request and reports its latency.
type Logging struct {
	logger   *logger.Logger
	observer RequestObserver
}

func NewLogging(logger *logger.Logger, observer RequestObserver) *Logging {
	return &Logging{logger: logger, observer: observer}
}

func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := routeOf(r)

		if l.observer != nil {
			l.observer.ObserveRequest(r.Method, route, status, duration)
		}

		args := []any{
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"duration_ms", duration.Milliseconds(),
		}
		if status >= http.StatusInternalServerError {
			l.logger.Error("HTTP request failed", args...)
			return
		}
		l.logger.Info("HTTP request completed", args...)
	})
}

func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		// a bare mount wildcard means no sub-route matched
		if pattern := rctx.RoutePattern(); pattern != "" && !strings.HasSuffix(pattern, "/*") {
			return pattern
		}
	}
	return unmatchedRoute
}
