// Package events publishes accepted pick events to Redis for external
// board consumers. The feed is optional; the engine never depends on
// it.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/shaanchanchani/Draft-Optimizer/internal/draft"
)

// PickEvent is the wire form of one accepted pick.
type PickEvent struct {
	SessionID  string       `json:"session_id"`
	PickNumber int          `json:"pick_number"`
	Round      int          `json:"round"`
	Team       int          `json:"team"`
	Slot       draft.Slot   `json:"slot"`
	Player     draft.Player `json:"player"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// PickPublisher pushes pick events onto a per-session Redis channel,
// guarded by a circuit breaker so a dead Redis cannot slow the draft
// down.
type PickPublisher struct {
	client  *redis.Client
	logger  *logrus.Logger
	breaker *gobreaker.CircuitBreaker
}

// NewPickPublisher wires a publisher over an established Redis client.
func NewPickPublisher(client *redis.Client, logger *logrus.Logger) *PickPublisher {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "pick-event-publisher",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Pick event publisher circuit state changed")
		},
	})
	return &PickPublisher{client: client, logger: logger, breaker: breaker}
}

// Channel returns the Redis pub/sub channel for one session's feed.
func Channel(sessionID string) string {
	return fmt.Sprintf("draft:events:%s", sessionID)
}

// Publish sends one pick event. Failures are logged and absorbed; a
// lost event never fails the pick that produced it.
func (p *PickPublisher) Publish(ctx context.Context, sessionID string, result draft.PickResult) {
	event := PickEvent{
		SessionID:  sessionID,
		PickNumber: result.PickNumber,
		Round:      result.Round,
		Team:       result.Team,
		Slot:       result.Slot,
		Player:     result.Player,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.WithError(err).Error("Failed to marshal pick event")
		return
	}

	_, err = p.breaker.Execute(func() (interface{}, error) {
		return nil, p.client.Publish(ctx, Channel(sessionID), payload).Err()
	})
	if err != nil {
		p.logger.WithError(err).WithFields(logrus.Fields{
			"session_id":  sessionID,
			"pick_number": result.PickNumber,
		}).Warn("Failed to publish pick event")
	}
}
