package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// PerIP keeps one token bucket per client IP. Idle entries are dropped by a
// background sweep so the map does not grow with every visitor ever seen.
type PerIP struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewPerIP allows max events per window with the same amount of burst.
func NewPerIP(max int, window time.Duration) *PerIP {
	l := &PerIP{
		clients: make(map[string]*client),
		limit:   rate.Every(window / time.Duration(max)),
		burst:   max,
	}
	go l.cleanup(window)
	return l
}

func (l *PerIP) cleanup(window time.Duration) {
	ticker := time.NewTicker(window)
	for range ticker.C {
		cutoff := time.Now().Add(-3 * window)
		l.mu.Lock()
		for ip, c := range l.clients {
			if c.lastSeen.Before(cutoff) {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}

// Allow reports whether the IP may proceed and consumes a token if so.
func (l *PerIP) Allow(ip string) bool {
	l.mu.Lock()
	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()
	l.mu.Unlock()

	return c.limiter.Allow()
}

// Middleware rejects rate-limited requests with 429.
func (l *PerIP) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
