// Package session hosts independent draft sessions. Each session owns
// its own player pool and draft state; nothing mutable is shared
// between sessions, and a per-session lock serializes picks against
// reads.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shaanchanchani/Draft-Optimizer/internal/draft"
)

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("session: not found")

// Session is one hosted draft. All access to the underlying draft goes
// through Update or Read so a submitted pick is atomic with respect to
// any reader.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.RWMutex
	draft *draft.Draft
}

// Update runs fn with exclusive access to the draft.
func (s *Session) Update(fn func(*draft.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.draft)
}

// Read runs fn with shared access to the draft. fn must not mutate.
func (s *Session) Read(fn func(*draft.Draft)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.draft)
}

// Manager creates and tracks draft sessions over one loaded ranking
// feed. Every session starts from its own copy of the pool.
type Manager struct {
	basePool []draft.Player
	weights  draft.Weights
	topN     int
	logger   *logrus.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager returns a manager seeding every session from players.
func NewManager(players []draft.Player, weights draft.Weights, topN int, logger *logrus.Logger) *Manager {
	base := make([]draft.Player, len(players))
	copy(base, players)
	return &Manager{
		basePool: base,
		weights:  weights,
		topN:     topN,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Create builds, configures and registers a new draft session. A
// configuration error registers nothing.
func (m *Manager) Create(numTeams, userSlot int) (*Session, error) {
	pool, err := draft.NewPool(m.basePool)
	if err != nil {
		return nil, err
	}
	d := draft.New(pool, draft.NewScorer(m.weights, m.topN))
	if err := d.Configure(numTeams, userSlot); err != nil {
		return nil, err
	}

	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		draft:     d,
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"session_id": s.ID,
		"num_teams":  numTeams,
		"user_slot":  userSlot,
	}).Info("Draft session created")
	return s, nil
}

// Get returns a session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete drops a finished session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
