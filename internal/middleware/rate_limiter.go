package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 3 * time.Minute
	visitorSweepEvery  = time.Minute
)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	mu  sync.Mutex
	ips map[string]*visitor
	r   rate.Limit
	b   int
	now func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter allows r requests per second per IP with bursts of b.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*visitor),
		r:   r,
		b:   b,
		now: time.Now,
	}
}

// GetLimiter returns the limiter for ip, creating it on first use.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	v, exists := i.ips[ip]
	if !exists {
		limiter := rate.NewLimiter(i.r, i.b)
		i.ips[ip] = &visitor{limiter: limiter, lastSeen: i.now()}
		return limiter
	}

	v.lastSeen = i.now()
	return v.limiter
}

// Sweep forgets IPs idle for longer than the idle timeout.
func (i *IPRateLimiter) Sweep() {
	i.mu.Lock()
	defer i.mu.Unlock()

	for ip, v := range i.ips {
		if i.now().Sub(v.lastSeen) > visitorIdleTimeout {
			delete(i.ips, ip)
		}
	}
}

// Run sweeps idle visitors every minute until ctx is done.
func (i *IPRateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(visitorSweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			i.Sweep()
		}
	}
}

func (i *IPRateLimiter) size() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// RateLimitMiddleware answers 429 once a client IP exhausts its bucket.
func RateLimitMiddleware(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			utils.AbortWithError(c, http.StatusTooManyRequests, "Too many requests, try again shortly")
			return
		}
		c.Next()
	}
}
