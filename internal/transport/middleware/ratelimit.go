package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than two sweep intervals are evicted in the background.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client

	idleTTL  time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts the eviction sweep; call Stop on shutdown.
func NewRateLimiter(sweepEvery time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		idleTTL: 2 * sweepEvery,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.sweepLoop(sweepEvery)
	return rl
}

// Stop ends the sweep. It may be called more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit admits perMinute requests per client with an equal burst. Rejected
// requests get 429 and a Retry-After for the next free token.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(perMinute))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			lim := rl.limiter(clientIP(r), every, perMinute, now)

			res := lim.ReserveN(now, 1)
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiter(key string, every rate.Limit, burst int, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		c = &client{lim: rate.NewLimiter(every, burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.lim
}

func (rl *RateLimiter) sweepLoop(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-t.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
