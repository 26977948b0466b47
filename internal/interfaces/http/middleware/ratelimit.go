package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/ner-spotlight/pkg/errors"
)

// RateLimiter decides whether a request with the given key may proceed.
type RateLimiter interface {
	Allow(key string) (bool, RateLimitInfo)
}

// RateLimitInfo carries the limiter state reported back to the client.
type RateLimitInfo struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RateLimitConfig holds configuration for the rate limit middleware.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate per key.
	RequestsPerSecond float64

	// BurstSize is the maximum burst above the sustained rate.
	BurstSize int

	// KeyFunc extracts the rate limit key from a request. Defaults to the
	// client IP.
	KeyFunc func(c *gin.Context) string

	// SkipPaths bypass rate limiting.
	SkipPaths []string

	// CleanupInterval is how often idle buckets are evicted.
	CleanupInterval time.Duration
}

// DefaultRateLimitConfig returns the default rate limit configuration.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		SkipPaths:         []string{"/healthz", "/readyz", "/metrics"},
		CleanupInterval:   5 * time.Minute,
	}
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// TokenBucketLimiter is an in-memory per-key token bucket.
type TokenBucketLimiter struct {
	rate  float64
	burst float64

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewTokenBucketLimiter constructs a limiter refilling rate tokens per
// second up to burst, and starts a background sweep that evicts buckets idle
// longer than cleanupInterval.
func NewTokenBucketLimiter(rate float64, burst int, cleanupInterval time.Duration) *TokenBucketLimiter {
	l := &TokenBucketLimiter{
		rate:    rate,
		burst:   float64(burst),
		buckets: make(map[string]*bucket),
	}
	if cleanupInterval > 0 {
		go l.sweep(cleanupInterval)
	}
	return l
}

// Allow consumes one token for key when available.
func (l *TokenBucketLimiter) Allow(key string) (bool, RateLimitInfo) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.burst}
		l.buckets[key] = b
	} else {
		elapsed := now.Sub(b.lastSeen).Seconds()
		b.tokens = math.Min(l.burst, b.tokens+elapsed*l.rate)
	}
	b.lastSeen = now

	allowed := b.tokens >= 1
	if allowed {
		b.tokens--
	}

	info := RateLimitInfo{
		Limit:     int(l.burst),
		Remaining: int(b.tokens),
		ResetAt:   now.Add(time.Duration((l.burst - b.tokens) / l.rate * float64(time.Second))),
	}
	return allowed, info
}

func (l *TokenBucketLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-interval)
		l.mu.Lock()
		for key, b := range l.buckets {
			if b.lastSeen.Before(cutoff) {
				delete(l.buckets, key)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit enforces per-key request rates, answering 429 with rate limit
// headers when the budget is exhausted.
func RateLimit(limiter RateLimiter, cfg RateLimitConfig) gin.HandlerFunc {
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		allowed, info := limiter.Allow(keyFunc(c))

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetAt.Unix(), 10))

		if !allowed {
			retryAfter := int(math.Ceil(time.Until(info.ResetAt).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			h.Set("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    errors.CodeRateLimit.String(),
				"message": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
