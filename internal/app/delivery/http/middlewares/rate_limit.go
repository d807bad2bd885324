package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit caps requests per client IP per minute. A non-positive
// max_requests disables it.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	maxRequests := m.InternalConfig.App.MaxRequests
	if maxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(maxRequests, time.Minute)
}
