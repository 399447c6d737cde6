// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/danielhkuo/codevault/clientid"
	"github.com/danielhkuo/codevault/metrics"
)

const (
	// idle clients are forgotten once the table grows past sweepThreshold
	sweepThreshold = 4096
	idleAfter      = 10 * time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket keyed by hashed client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int
	salt  string
	clock clockwork.Clock

	mu      sync.Mutex
	clients map[string]*client
}

// NewRateLimiter allows perSecond requests per client with the given burst.
// A zero perSecond disables limiting.
func NewRateLimiter(perSecond float64, burst int, salt string, clock clockwork.Clock) *RateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RateLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		salt:    salt,
		clock:   clock,
		clients: make(map[string]*client),
	}
}

// Allow reports whether the client identified by key may proceed now
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		if len(rl.clients) >= sweepThreshold {
			rl.sweep(now)
		}
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweep(now time.Time) {
	for k, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleAfter {
			delete(rl.clients, k)
		}
	}
}

// Len is the number of clients currently tracked
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientid.HashIP(GetClientIP(r), rl.salt)
		if !rl.Allow(key) {
			metrics.RateLimited.Inc()
			slog.Warn("rate limited", "client", key, "path", r.URL.Path)
			w.Header().Set("Retry-After", "1")
			ErrorResponse(w, http.StatusTooManyRequests, "Too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}
