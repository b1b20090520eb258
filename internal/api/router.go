package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shaanchanchani/Draft-Optimizer/internal/api/handlers"
	"github.com/shaanchanchani/Draft-Optimizer/internal/events"
	"github.com/shaanchanchani/Draft-Optimizer/internal/session"
	"github.com/shaanchanchani/Draft-Optimizer/internal/websocket"
)

// SetupRoutes configures all routes on the given router.
func SetupRoutes(
	router *gin.Engine,
	sessions *session.Manager,
	wsHub *websocket.Hub,
	publisher *events.PickPublisher,
	redisClient *redis.Client,
	logger *logrus.Logger,
) {
	draftHandler := handlers.NewDraftHandler(sessions, wsHub, publisher, logger)
	healthHandler := handlers.NewHealthHandler(sessions, redisClient, logger)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/drafts", draftHandler.CreateDraft)
		apiV1.GET("/drafts/:id", draftHandler.GetDraft)
		apiV1.POST("/drafts/:id/picks", draftHandler.SubmitPick)
		apiV1.GET("/drafts/:id/recommendations", draftHandler.GetRecommendations)
		apiV1.GET("/drafts/:id/rosters/:team", draftHandler.GetRoster)
		apiV1.PUT("/drafts/:id/weights", draftHandler.UpdateWeights)
	}

	// WebSocket endpoint for live board updates
	router.GET("/ws/drafts/:id", wsHub.HandleWebSocket)

	// Health check endpoints
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)
}
