package middlewares

import (
	"errors"
	"invrent-service/internal/pkg/exceptions"
	"invrent-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket holding requests tokens that refill
// evenly over per. A client that runs its bucket dry is blocked for
// blockTime. It guards admin PINs against guessing.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(logger *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.allow(ip) {
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrClientRateLimited(errors.New("rate limit exceeded"), ip))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (rl *RateLimiter) isBlocked(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	blockedUntil, found := rl.blocked[ip]
	return found && rl.now().Before(blockedUntil)
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if blockedUntil, found := rl.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(rl.blocked, ip)
	}

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(rl.per/time.Duration(rl.requests)), rl.requests)
		rl.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		rl.blocked[ip] = now.Add(rl.blockTime)
		return false
	}
	return true
}

// AdminPinLimit counts every PIN activation attempt against the client's
// PIN budget.
func (m *Middlewares) AdminPinLimit(next http.Handler) http.Handler {
	return m.pinLimiter.Limit(next)
}
