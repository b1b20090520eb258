package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shaanchanchani/Draft-Optimizer/internal/session"
)

// HealthStatus is the health check response body.
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	sessions *session.Manager
	redis    *redis.Client
	logger   *logrus.Logger
}

// NewHealthHandler creates a new health handler. redis may be nil when
// the pick-event feed is disabled.
func NewHealthHandler(sessions *session.Manager, redis *redis.Client, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		sessions: sessions,
		redis:    redis,
		logger:   logger,
	}
}

// GetHealth returns the basic health status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	response := HealthStatus{
		Status:    "ok",
		Service:   "draft-optimizer",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	response.Checks["sessions"] = "ok"

	// Redis feed is optional; a dead feed degrades, never kills.
	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			response.Status = "degraded"
			response.Checks["redis"] = "failed: " + err.Error()
		} else {
			response.Checks["redis"] = "ok"
		}
	} else {
		response.Checks["redis"] = "not_configured"
	}

	// A degraded feed still serves drafts, so the endpoint stays 200
	// and reports the degradation in the body.
	c.JSON(http.StatusOK, response)
}

// GetReady returns readiness for traffic.
func (h *HealthHandler) GetReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ready":         true,
		"live_sessions": h.sessions.Count(),
	})
}
