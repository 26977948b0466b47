package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, seen)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDHonorsCallerID(t *testing.T) {
	r := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied", w.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	cfg := DefaultCORSConfig()
	r := newEngine(CORS(cfg))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORSDisallowedOrigin(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"http://trusted.example.com"}
	r := newEngine(CORS(cfg))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTokenBucketLimiter(t *testing.T) {
	l := NewTokenBucketLimiter(1, 2, 0)

	allowed, info := l.Allow("k")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = l.Allow("k")
	assert.True(t, allowed)

	allowed, info = l.Allow("k")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)

	// Separate keys have separate budgets.
	allowed, _ = l.Allow("other")
	assert.True(t, allowed)
}

func TestTokenBucketRefill(t *testing.T) {
	l := NewTokenBucketLimiter(100, 1, 0)

	allowed, _ := l.Allow("k")
	require.True(t, allowed)
	allowed, _ = l.Allow("k")
	require.False(t, allowed)

	time.Sleep(20 * time.Millisecond)
	allowed, _ = l.Allow("k")
	assert.True(t, allowed)
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	cfg.KeyFunc = func(*gin.Context) string { return "fixed" }
	limiter := NewTokenBucketLimiter(1, 1, 0)
	r := newEngine(RateLimit(limiter, cfg))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimitSkipPaths(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	cfg.KeyFunc = func(*gin.Context) string { return "fixed" }
	limiter := NewTokenBucketLimiter(1, 1, 0)

	r := gin.New()
	r.Use(RateLimit(limiter, cfg))
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
