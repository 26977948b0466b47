package handlers

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	version   string
	startedAt time.Time
	ready     atomic.Bool
}

// NewHealthHandler constructs a HealthHandler. The service reports not ready
// until SetReady is called after startup wiring completes.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startedAt: time.Now(),
	}
}

// SetReady flips the readiness state.
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Healthz is the liveness probe. It answers 200 whenever the process can
// serve requests at all.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Readyz is the readiness probe. It answers 503 until the server has been
// marked ready.
func (h *HealthHandler) Readyz(c *gin.Context) {
	if !h.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
