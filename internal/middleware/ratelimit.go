package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/logger"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in Window
	RequestsPerWindow int
	Window            time.Duration
	// Burst allows temporary bursts above the steady rate
	Burst int
}

// rateLimiter keeps one token bucket per client key
type rateLimiter struct {
	limiters    sync.Map // map[string]*rate.Limiter
	rate        rate.Limit
	burst       int
	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	actual, _ := rl.limiters.LoadOrStore(key, limiter)
	rl.maybeCleanup()
	return actual.(*rate.Limiter)
}

// maybeCleanup drops idle limiters at most once every five minutes.
// A limiter with a full bucket has not been used recently.
func (rl *rateLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitByIP limits requests per client IP and answers 429 with Retry-After
func RateLimitByIP(cfg RateLimitConfig) gin.HandlerFunc {
	rl := &rateLimiter{
		rate:        rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:       cfg.Burst,
		lastCleanup: time.Now(),
	}

	return func(c *gin.Context) {
		key := c.ClientIP()
		limiter := rl.getLimiter(key)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			delay := reservation.Delay()
			reservation.Cancel()

			retryAfter := max(int(delay.Seconds()), 1)
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Ctx(c.Request.Context()).Warn().
				Str("clientIP", key).
				Str("path", c.Request.URL.Path).
				Int("retryAfter", retryAfter).
				Msg("Rate limit exceeded")

			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTooManyRequests,
				"Too many requests. Please try again later."))
			return
		}
		c.Next()
	}
}
