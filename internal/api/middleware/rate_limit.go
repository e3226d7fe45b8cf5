package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/afrihackbox/mssp/internal/pkg/errors"
	"github.com/afrihackbox/mssp/internal/pkg/logger"
	"github.com/afrihackbox/mssp/internal/pkg/metrics"
	"github.com/afrihackbox/mssp/internal/pkg/utils"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"
)

// DefaultIdleTimeout is how long a client's limiter survives without requests
const DefaultIdleTimeout = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP
type RateLimiter struct {
	clients map[string]*client
	mu      sync.Mutex
	rate    rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time

	scheduler *cron.Cron
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*client),
		rate:    rate.Limit(requestsPerSecond),
		burst:   burst,
		idle:    DefaultIdleTimeout,
		now:     time.Now,
	}
}

// Allow reports whether the client identified by key may make a request now
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[key] = c
	}
	now := rl.now()
	c.lastSeen = now
	n := len(rl.clients)
	rl.mu.Unlock()

	if !ok {
		metrics.SetActiveRateLimiters(n)
	}
	return c.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Cleanup drops clients idle for longer than the idle timeout and returns
// how many were removed
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	cutoff := rl.now().Add(-rl.idle)
	removed := 0
	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
			removed++
		}
	}
	n := len(rl.clients)
	rl.mu.Unlock()

	metrics.SetActiveRateLimiters(n)
	return removed
}

// StartCleanup runs Cleanup on a standard five-field cron schedule
func (rl *RateLimiter) StartCleanup(schedule string, log *logger.Logger) error {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid cleanup schedule: %w", err)
	}

	rl.scheduler = cron.New()
	if _, err := rl.scheduler.AddFunc(schedule, func() {
		if removed := rl.Cleanup(); removed > 0 {
			log.WithFields(map[string]interface{}{
				"removed": removed,
				"active":  rl.Len(),
			}).Debug("Pruned idle rate limiters")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}
	rl.scheduler.Start()

	log.With("schedule", schedule).Info("Rate limiter cleanup scheduled")
	return nil
}

// Stop halts scheduled cleanup and waits for a running pass to finish
func (rl *RateLimiter) Stop() {
	if rl.scheduler == nil {
		return
	}
	<-rl.scheduler.Stop().Done()
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(clientIP(r)) {
				w.Header().Set("Retry-After", "1")
				utils.WriteError(w, errors.RateLimited("Too many requests. Please try again later."))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
