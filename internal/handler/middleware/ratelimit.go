package middleware

import (
	"net/http"
	"sync"
	"time"

	"restaurant-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter tracks a token bucket per client IP. Entries idle for
// longer than staleAfter are evicted on the next sweep.
type clientLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientEntry
	rps      rate.Limit
	burst    int
	lastSeen func() time.Time
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const staleAfter = 10 * time.Minute

func newClientLimiter(cfg config.RateLimitConfig) *clientLimiter {
	return &clientLimiter{
		clients:  make(map[string]*clientEntry),
		rps:      rate.Limit(float64(cfg.PublicWriteRPM) / 60.0),
		burst:    cfg.Burst,
		lastSeen: time.Now,
	}
}

func (l *clientLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.lastSeen()
	entry, ok := l.clients[ip]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = entry
	}
	entry.lastSeen = now

	if len(l.clients) > 1000 {
		l.sweep(now)
	}

	return entry.limiter.Allow()
}

func (l *clientLimiter) sweep(now time.Time) {
	for ip, entry := range l.clients {
		if now.Sub(entry.lastSeen) > staleAfter {
			delete(l.clients, ip)
		}
	}
}

// PublicWriteRateLimit throttles unauthenticated form submissions
// (reservations, reviews, contact messages) per client IP.
func PublicWriteRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	limiter := newClientLimiter(cfg)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
