package middleware

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// RateLimitMiddleware limita a taxa de requisições aceitas pelo servidor.
// O limite é global e não por cliente, suficiente para proteger as consultas
// de agregação contra rajadas
func RateLimitMiddleware(requestsPerMinute int, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Warn("Requisição rejeitada por limite de taxa")

				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Limite de requisições excedido", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
