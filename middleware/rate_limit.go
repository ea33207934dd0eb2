package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

// limiterSet keeps one token bucket per client IP; idle buckets expire after five minutes.
type limiterSet struct {
	mu       sync.Mutex
	limiters map[string]*rateLimiter
	limit    rate.Limit
	burst    int
}

// RateLimit applies a per-IP token bucket of perMinute requests to unsafe methods.
// Reads are never limited.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute < 1 {
		perMinute = 1
	}
	set := &limiterSet{
		limiters: map[string]*rateLimiter{},
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    max(perMinute/2, 1),
	}

	return func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodGet || ctx.Request.Method == http.MethodHead {
			ctx.Next()
			return
		}
		if !set.get(ctx.ClientIP()).Allow() {
			ctx.Header("Retry-After", "60")
			ctx.String(http.StatusTooManyRequests, "Too many requests, slow down.")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, l := range s.limiters {
		if now.After(l.expires) {
			delete(s.limiters, k)
		}
	}
	if l, ok := s.limiters[key]; ok {
		l.expires = now.Add(5 * time.Minute)
		return l.limiter
	}
	l := &rateLimiter{limiter: rate.NewLimiter(s.limit, s.burst), expires: now.Add(5 * time.Minute)}
	s.limiters[key] = l
	return l.limiter
}
