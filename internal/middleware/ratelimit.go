package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Brief generation is expensive, so the per-client budget is small.
const (
	requestsPerMinute = 30
	burstSize         = 5
)

// RateLimit middleware with a per-IP in-memory token bucket. Single
// instance only; a shared limiter would be needed behind a balancer.
func RateLimit(next http.Handler) http.Handler {
	limiter := newTokenBucketLimiter(requestsPerMinute, burstSize)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := getClientIP(r)

		if !limiter.Allow(clientIP) {
			log.Warn().
				Str("client_ip", clientIP).
				Str("url", r.URL.String()).
				Msg("Rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":"RATE_LIMIT","message":"Rate limit exceeded. Please try again later."}}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClientIP extracts the real client IP address
func getClientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		if i := strings.IndexByte(forwardedFor, ','); i > 0 {
			return forwardedFor[:i]
		}
		return forwardedFor
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}

type tokenBucketLimiter struct {
	requestsPerMinute int
	burstSize         int

	mu      sync.Mutex
	clients map[string]*clientLimit
}

type clientLimit struct {
	tokens     int
	lastRefill time.Time
}

func newTokenBucketLimiter(requestsPerMinute, burstSize int) *tokenBucketLimiter {
	return &tokenBucketLimiter{
		requestsPerMinute: requestsPerMinute,
		burstSize:         burstSize,
		clients:           make(map[string]*clientLimit),
	}
}

func (rl *tokenBucketLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	c, ok := rl.clients[clientIP]
	if !ok {
		c = &clientLimit{tokens: rl.burstSize, lastRefill: now}
		rl.clients[clientIP] = c
	}

	refill := int(now.Sub(c.lastRefill).Minutes() * float64(rl.requestsPerMinute))
	if refill > 0 {
		c.tokens = min(c.tokens+refill, rl.burstSize)
		c.lastRefill = now
	}

	if c.tokens > 0 {
		c.tokens--
		return true
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
