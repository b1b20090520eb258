package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shaanchanchani/Draft-Optimizer/internal/draft"
	"github.com/shaanchanchani/Draft-Optimizer/internal/events"
	"github.com/shaanchanchani/Draft-Optimizer/internal/session"
	"github.com/shaanchanchani/Draft-Optimizer/internal/websocket"
)

// ErrorResponse is the JSON error body for every endpoint.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// DraftHandler exposes draft sessions over JSON.
type DraftHandler struct {
	sessions  *session.Manager
	wsHub     *websocket.Hub
	publisher *events.PickPublisher
	logger    *logrus.Logger
}

// NewDraftHandler creates a new draft handler. publisher may be nil
// when the pick-event feed is disabled.
func NewDraftHandler(
	sessions *session.Manager,
	wsHub *websocket.Hub,
	publisher *events.PickPublisher,
	logger *logrus.Logger,
) *DraftHandler {
	return &DraftHandler{
		sessions:  sessions,
		wsHub:     wsHub,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateDraftRequest configures a new session.
type CreateDraftRequest struct {
	NumTeams int `json:"num_teams" binding:"required"`
	UserSlot int `json:"user_slot" binding:"required"`
}

// SubmitPickRequest names the drafted player.
type SubmitPickRequest struct {
	Player string `json:"player" binding:"required"`
}

// UpdateWeightsRequest replaces the scoring weights.
type UpdateWeightsRequest struct {
	WADP  *float64 `json:"w_adp" binding:"required"`
	WVONA *float64 `json:"w_vona" binding:"required"`
	WNeed *float64 `json:"w_need" binding:"required"`
}

// draftSnapshot is the derived session view for board rendering.
type draftSnapshot struct {
	SessionID     string                  `json:"session_id"`
	Phase         draft.Phase             `json:"phase"`
	NumTeams      int                     `json:"num_teams"`
	UserSlot      int                     `json:"user_slot"`
	PickNumber    int                     `json:"pick_number"`
	TotalPicks    int                     `json:"total_picks"`
	CurrentPicker int                     `json:"current_picker"`
	UserOnClock   bool                    `json:"user_on_clock"`
	PoolSize      int                     `json:"pool_size"`
	Positions     []draft.PositionSummary `json:"positions"`
	Weights       draft.Weights           `json:"weights"`
}

func snapshot(id string, d *draft.Draft) draftSnapshot {
	return draftSnapshot{
		SessionID:     id,
		Phase:         d.Phase(),
		NumTeams:      d.NumTeams(),
		UserSlot:      d.UserSlot(),
		PickNumber:    d.PickNumber(),
		TotalPicks:    d.TotalPicks(),
		CurrentPicker: d.CurrentPicker(),
		UserOnClock:   d.UserOnClock(),
		PoolSize:      d.PoolSize(),
		Positions:     d.PoolSummaries(),
		Weights:       d.ScoringWeights(),
	}
}

// CreateDraft handles POST /api/v1/drafts.
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request format",
			Code:  "INVALID_REQUEST",
			Details: map[string]string{
				"validation_error": err.Error(),
			},
		})
		return
	}

	s, err := h.sessions.Create(req.NumTeams, req.UserSlot)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "CONFIG_ERROR",
		})
		return
	}

	s.Read(func(d *draft.Draft) {
		c.JSON(http.StatusCreated, snapshot(s.ID, d))
	})
}

// GetDraft handles GET /api/v1/drafts/:id.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	s.Read(func(d *draft.Draft) {
		c.JSON(http.StatusOK, snapshot(s.ID, d))
	})
}

// SubmitPick handles POST /api/v1/drafts/:id/picks.
func (h *DraftHandler) SubmitPick(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	var req SubmitPickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request format",
			Code:  "INVALID_REQUEST",
			Details: map[string]string{
				"validation_error": err.Error(),
			},
		})
		return
	}

	var result draft.PickResult
	err := s.Update(func(d *draft.Draft) error {
		var err error
		result, err = d.SubmitPick(req.Player)
		return err
	})
	if err != nil {
		status, code := pickErrorStatus(err)
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"session_id":  s.ID,
		"pick_number": result.PickNumber,
		"team_index":  result.Team,
		"player":      result.Player.Name,
		"slot":        result.Slot,
	}).Info("Pick accepted")

	h.wsHub.BroadcastToSession(s.ID, gin.H{
		"type":        "pick",
		"pick":        result,
		"occurred_at": time.Now().UTC(),
	})
	if h.publisher != nil {
		h.publisher.Publish(c.Request.Context(), s.ID, result)
	}

	c.JSON(http.StatusOK, gin.H{"pick": result})
}

// GetRecommendations handles GET /api/v1/drafts/:id/recommendations.
// Off the user's turn the list is empty, not an error.
func (h *DraftHandler) GetRecommendations(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	s.Read(func(d *draft.Draft) {
		c.JSON(http.StatusOK, gin.H{
			"user_on_clock":   d.UserOnClock(),
			"recommendations": d.Recommendations(),
		})
	})
}

// GetRoster handles GET /api/v1/drafts/:id/rosters/:team.
func (h *DraftHandler) GetRoster(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	team, err := strconv.Atoi(c.Param("team"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Team index must be an integer",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	var view []draft.SlotView
	var viewErr error
	s.Read(func(d *draft.Draft) {
		view, viewErr = d.Roster(team)
	})
	if viewErr != nil {
		status := http.StatusBadRequest
		if errors.Is(viewErr, draft.ErrUnknownTeam) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: viewErr.Error(), Code: "ROSTER_ERROR"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team, "roster": view})
}

// UpdateWeights handles PUT /api/v1/drafts/:id/weights.
func (h *DraftHandler) UpdateWeights(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	var req UpdateWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request format",
			Code:  "INVALID_REQUEST",
			Details: map[string]string{
				"validation_error": err.Error(),
			},
		})
		return
	}

	weights := draft.Weights{ADP: *req.WADP, VONA: *req.WVONA, Need: *req.WNeed}
	err := s.Update(func(d *draft.Draft) error {
		return d.SetScoringWeights(weights)
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "WEIGHT_ERROR"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weights": weights})
}

func (h *DraftHandler) lookup(c *gin.Context) (*session.Session, bool) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Draft session not found",
			Code:  "SESSION_NOT_FOUND",
		})
		return nil, false
	}
	return s, true
}

func pickErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, draft.ErrUnknownPlayer):
		return http.StatusNotFound, "UNKNOWN_PLAYER"
	case errors.Is(err, draft.ErrDraftComplete):
		return http.StatusConflict, "ALREADY_COMPLETE"
	case errors.Is(err, draft.ErrRosterOverflow):
		return http.StatusConflict, "ROSTER_OVERFLOW"
	case errors.Is(err, draft.ErrNotStarted):
		return http.StatusConflict, "NOT_STARTED"
	default:
		return http.StatusInternalServerError, "PICK_ERROR"
	}
}
