package http

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// rateLimiter is a per-client sliding-window request counter.
type rateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
	}
	if max > 0 {
		go rl.cleanup()
	}
	return rl
}

// allow reports whether key is under the limit and records this request.
func (rl *rateLimiter) allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	hits := rl.hits[key]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= rl.max {
		rl.hits[key] = kept
		return false
	}
	rl.hits[key] = append(kept, now)
	return true
}

// cleanup periodically drops clients whose whole window has expired so the
// map does not grow without bound.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	for range ticker.C {
		cutoff := time.Now().Add(-rl.window)
		rl.mu.Lock()
		for key, hits := range rl.hits {
			kept := hits[:0]
			for _, t := range hits {
				if t.After(cutoff) {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				delete(rl.hits, key)
			} else {
				rl.hits[key] = kept
			}
		}
		rl.mu.Unlock()
	}
}

// withRateLimit rejects clients that exceed the configured request budget
// within the sliding window. A zero budget disables limiting entirely.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter.max <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		if !h.limiter.allow(clientIP(r)) {
			respondError(w, r, http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP derives the limiter key from the remote address, falling back to
// the raw value when it does not parse as host:port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
