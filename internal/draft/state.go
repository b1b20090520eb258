package draft

// Phase is the lifecycle phase of a draft session.
type Phase string

const (
	PhaseConfiguring Phase = "configuring"
	PhaseInProgress  Phase = "in_progress"
	PhaseComplete    Phase = "complete"
)

// Draft is the state machine for one snake-draft session. It owns the
// player pool and every team's roster, consumes pick events one at a
// time, and exposes the derived view (whose turn it is, the ranked
// recommendations, roster contents) to whatever transport wraps it.
//
// Draft is not safe for concurrent use; the hosting session serializes
// access so an accepted pick is atomic with respect to reads.
type Draft struct {
	numTeams int
	userSlot int
	rosters  map[int]*Roster
	pool     *Pool
	order    []int
	pick     int
	phase    Phase
	scorer   *Scorer
}

// PickResult describes one accepted pick.
type PickResult struct {
	PickNumber int    `json:"pick_number"`
	Round      int    `json:"round"`
	Team       int    `json:"team"`
	Slot       Slot   `json:"slot"`
	Player     Player `json:"player"`
}

// New creates an unconfigured draft over a loaded player pool.
func New(pool *Pool, scorer *Scorer) *Draft {
	if scorer == nil {
		scorer = NewScorer(DefaultWeights(), 5)
	}
	return &Draft{
		pool:   pool,
		phase:  PhaseConfiguring,
		scorer: scorer,
	}
}

// Configure sets the team count and the user's draft slot, builds the
// empty rosters and the serpentine pick order, and moves the session
// to InProgress. It succeeds exactly once; configuration is immutable
// afterwards.
func (d *Draft) Configure(numTeams, userSlot int) error {
	if d.phase != PhaseConfiguring {
		return ErrAlreadyConfigured
	}
	if numTeams < 2 {
		return ErrInvalidTeamCount
	}
	if userSlot < 1 || userSlot > numTeams {
		return ErrInvalidUserSlot
	}
	d.numTeams = numTeams
	d.userSlot = userSlot
	d.rosters = make(map[int]*Roster, numTeams)
	for team := 1; team <= numTeams; team++ {
		d.rosters[team] = NewRoster()
	}
	d.order = GeneratePickOrder(numTeams)
	d.pick = 1
	d.phase = PhaseInProgress
	return nil
}

// Phase returns the current lifecycle phase.
func (d *Draft) Phase() Phase {
	return d.phase
}

// NumTeams returns the configured team count, 0 while configuring.
func (d *Draft) NumTeams() int {
	return d.numTeams
}

// UserSlot returns the user's 1-based draft slot, 0 while configuring.
func (d *Draft) UserSlot() int {
	return d.userSlot
}

// PickNumber returns the 1-based number of the next pick to be made.
// Past the end of the draft it stays at TotalPicks()+1.
func (d *Draft) PickNumber() int {
	return d.pick
}

// TotalPicks returns the number of picks in the whole draft.
func (d *Draft) TotalPicks() int {
	return d.numTeams * RosterRounds
}

// CurrentPicker returns the team index on the clock, or 0 when the
// session is not in progress.
func (d *Draft) CurrentPicker() int {
	if d.phase != PhaseInProgress {
		return 0
	}
	return d.order[d.pick-1]
}

// UserOnClock reports whether the current pick belongs to the user.
func (d *Draft) UserOnClock() bool {
	return d.phase == PhaseInProgress && d.CurrentPicker() == d.userSlot
}

// SubmitPick applies one pick event: the named player goes to the team
// on the clock and the pick counter advances. A rejected pick mutates
// nothing, so a duplicate submission of an already-drafted player
// fails with ErrUnknownPlayer and leaves the pool and every roster
// exactly as they were.
func (d *Draft) SubmitPick(playerName string) (PickResult, error) {
	switch d.phase {
	case PhaseConfiguring:
		return PickResult{}, ErrNotStarted
	case PhaseComplete:
		return PickResult{}, ErrDraftComplete
	}
	player, ok := d.pool.Get(playerName)
	if !ok {
		return PickResult{}, ErrUnknownPlayer
	}
	team := d.order[d.pick-1]
	slot, err := d.rosters[team].Assign(player)
	if err != nil {
		return PickResult{}, err
	}
	d.pool.Remove(playerName)
	result := PickResult{
		PickNumber: d.pick,
		Round:      (d.pick-1)/d.numTeams + 1,
		Team:       team,
		Slot:       slot,
		Player:     player,
	}
	d.pick++
	if d.pick > d.TotalPicks() {
		d.phase = PhaseComplete
	}
	return result, nil
}

// Recommendations returns the ranked suggestions for the user's pick.
// Off the user's turn (or outside InProgress) it returns an empty
// slice, never an error, so the caller can silently skip rendering.
func (d *Draft) Recommendations() []ScoredPlayer {
	if !d.UserOnClock() {
		return []ScoredPlayer{}
	}
	lookahead := lookaheadWindow(d.order, d.pick+1, d.userSlot)
	return d.scorer.Suggest(d.pool, lookahead, d.rosters, d.rosters[d.userSlot])
}

// ScoredPool returns the full pool ranked for the user, empty off-turn.
func (d *Draft) ScoredPool() []ScoredPlayer {
	if !d.UserOnClock() {
		return []ScoredPlayer{}
	}
	lookahead := lookaheadWindow(d.order, d.pick+1, d.userSlot)
	return d.scorer.Score(d.pool, lookahead, d.rosters, d.rosters[d.userSlot])
}

// Roster returns the 14-slot view for a team. Valid in InProgress and
// Complete.
func (d *Draft) Roster(team int) ([]SlotView, error) {
	if d.phase == PhaseConfiguring {
		return nil, ErrNotStarted
	}
	roster, ok := d.rosters[team]
	if !ok {
		return nil, ErrUnknownTeam
	}
	return roster.View(), nil
}

// SetScoringWeights replaces the composite-score weights.
func (d *Draft) SetScoringWeights(weights Weights) error {
	return d.scorer.SetWeights(weights)
}

// ScoringWeights returns the current weights.
func (d *Draft) ScoringWeights() Weights {
	return d.scorer.Weights()
}

// PoolSize returns the number of undrafted players.
func (d *Draft) PoolSize() int {
	return d.pool.Len()
}

// PoolSummaries reports per-position stats over the remaining pool.
func (d *Draft) PoolSummaries() []PositionSummary {
	return Summaries(d.pool)
}
