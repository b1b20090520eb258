package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shaanchanchani/Draft-Optimizer/internal/api"
	"github.com/shaanchanchani/Draft-Optimizer/internal/draft"
	"github.com/shaanchanchani/Draft-Optimizer/internal/events"
	"github.com/shaanchanchani/Draft-Optimizer/internal/pool"
	"github.com/shaanchanchani/Draft-Optimizer/internal/session"
	"github.com/shaanchanchani/Draft-Optimizer/internal/websocket"
	"github.com/shaanchanchani/Draft-Optimizer/pkg/config"
	"github.com/shaanchanchani/Draft-Optimizer/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize structured logger with service context
	structuredLogger := logger.InitLogger("info", cfg.IsDevelopment())
	logger.WithService("draft-optimizer").WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("Starting Draft Optimizer")

	// Setup Gin mode
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the ADP rankings feed every session draws its pool from
	players, err := pool.LoadCSV(cfg.RankingsCSVPath)
	if err != nil {
		logger.WithService("draft-optimizer").Fatalf("Failed to load rankings: %v", err)
	}
	logger.WithService("draft-optimizer").WithFields(logrus.Fields{
		"rankings": cfg.RankingsCSVPath,
		"players":  len(players),
	}).Info("Player pool loaded")

	weights := draft.Weights{ADP: cfg.WeightADP, VONA: cfg.WeightVONA, Need: cfg.WeightNeed}
	if err := weights.Validate(); err != nil {
		logger.WithService("draft-optimizer").Fatalf("Invalid scoring weights: %v", err)
	}
	sessions := session.NewManager(players, weights, cfg.RecommendationSize, structuredLogger)

	// Optional Redis pick-event feed
	var redisClient *redis.Client
	var publisher *events.PickPublisher
	if cfg.EnablePickEventFeed {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.WithService("draft-optimizer").Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.WithService("draft-optimizer").Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		publisher = events.NewPickPublisher(redisClient, structuredLogger)
	}

	// WebSocket hub for live board updates
	wsHub := websocket.NewHub(structuredLogger)
	go wsHub.Run()

	// Initialize router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	api.SetupRoutes(router, sessions, wsHub, publisher, redisClient, structuredLogger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.WithService("draft-optimizer").WithField("port", cfg.Port).Info("Draft Optimizer started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("draft-optimizer").Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("draft-optimizer").Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService("draft-optimizer").Fatalf("Forced to shutdown: %v", err)
	}

	logger.WithService("draft-optimizer").Info("Draft Optimizer exited")
}
