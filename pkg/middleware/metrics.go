package middleware

import (
	"net/http"
	"staybook/pkg/metrics"
	"time"
)

func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)
			next.ServeHTTP(wrapped, r)
			metrics.ObserveHTTP(r.Method, wrapped.statusCode, time.Since(start))
		})
	}
}
