package draft

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigPool builds enough players for a full short draft: count players
// per position with spread-out ADPs.
func bigPool(t *testing.T, perPosition int) *Pool {
	t.Helper()
	var players []Player
	adp := 1.0
	for i := 0; i < perPosition; i++ {
		for _, pos := range []string{"RB", "WR", "QB", "TE"} {
			players = append(players, Player{
				Name:     fmt.Sprintf("%s-%02d", pos, i+1),
				Team:     "FA",
				Bye:      7,
				Position: pos,
				ADP:      adp,
			})
			adp += 1.0
		}
	}
	pool, err := NewPool(players)
	require.NoError(t, err)
	return pool
}

func TestConfigure_Validation(t *testing.T) {
	cases := []struct {
		name     string
		numTeams int
		userSlot int
		wantErr  error
	}{
		{"zero teams", 0, 1, ErrInvalidTeamCount},
		{"one team", 1, 1, ErrInvalidTeamCount},
		{"negative teams", -4, 1, ErrInvalidTeamCount},
		{"zero slot", 10, 0, ErrInvalidUserSlot},
		{"slot beyond teams", 10, 11, ErrInvalidUserSlot},
		{"valid", 10, 3, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := New(bigPool(t, 40), nil)
			err := d.Configure(tc.numTeams, tc.userSlot)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, PhaseConfiguring, d.Phase())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, PhaseInProgress, d.Phase())
			}
		})
	}
}

func TestConfigure_ImmutableOnceSet(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	require.NoError(t, d.Configure(10, 3))
	assert.ErrorIs(t, d.Configure(12, 4), ErrAlreadyConfigured)
	assert.Equal(t, 10, d.NumTeams())
	assert.Equal(t, 3, d.UserSlot())
}

func TestSubmitPick_BeforeConfiguration(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	_, err := d.SubmitPick("RB-01")
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestSubmitPick_WalksSerpentineOrder(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	require.NoError(t, d.Configure(10, 3))

	assert.Equal(t, 1, d.CurrentPicker())

	res, err := d.SubmitPick("RB-01")
	require.NoError(t, err)
	assert.Equal(t, 1, res.PickNumber)
	assert.Equal(t, 1, res.Team)
	assert.Equal(t, 1, res.Round)
	assert.Equal(t, 2, d.CurrentPicker())

	// Finish round 1.
	for i := 2; i <= 10; i++ {
		_, err := d.SubmitPick(fmt.Sprintf("WR-%02d", i))
		require.NoError(t, err)
	}
	assert.Equal(t, 11, d.PickNumber())
	assert.Equal(t, 10, d.CurrentPicker(), "round 2 opens with the last team of round 1")
}

func TestSubmitPick_UnknownAndDuplicate(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	require.NoError(t, d.Configure(4, 1))

	_, err := d.SubmitPick("Nobody")
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	_, err = d.SubmitPick("RB-01")
	require.NoError(t, err)
	poolAfter := d.PoolSize()
	pickAfter := d.PickNumber()

	// Duplicate submission: rejected, nothing double-applied.
	_, err = d.SubmitPick("RB-01")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
	assert.Equal(t, poolAfter, d.PoolSize())
	assert.Equal(t, pickAfter, d.PickNumber())
	view, rerr := d.Roster(1)
	require.NoError(t, rerr)
	assert.Equal(t, "RB-01", view[1].Player)
	assert.Equal(t, "", view[2].Player)
}

func TestSubmitPick_RunsToCompletion(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	require.NoError(t, d.Configure(2, 1))

	total := d.TotalPicks()
	require.Equal(t, 2*RosterRounds, total)

	// Each team drafts a balanced 14: 4 RB, 4 WR, 3 QB, 3 TE, which
	// exactly fills the starters plus all seven bench slots.
	quota := []string{"RB", "RB", "RB", "RB", "WR", "WR", "WR", "WR", "QB", "QB", "QB", "TE", "TE", "TE"}
	taken := map[string]int{}
	drafted := map[int]int{}
	for i := 0; i < total; i++ {
		team := d.CurrentPicker()
		pos := quota[drafted[team]]
		drafted[team]++
		taken[pos]++
		_, err := d.SubmitPick(fmt.Sprintf("%s-%02d", pos, taken[pos]))
		require.NoError(t, err, "pick %d", i+1)
	}
	assert.Equal(t, PhaseComplete, d.Phase())
	assert.Equal(t, 0, d.CurrentPicker())

	_, err := d.SubmitPick("RB-20")
	assert.ErrorIs(t, err, ErrDraftComplete)

	// Rosters stay readable after completion.
	view, err := d.Roster(2)
	require.NoError(t, err)
	require.Len(t, view, 14)
	for _, sv := range view {
		assert.NotEmpty(t, sv.Player, "slot %s should be filled after a full draft", sv.Slot)
	}
}

func TestSubmitPick_RosterOverflowRejectsPick(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	require.NoError(t, d.Configure(2, 1))

	// Team 1 hoards quarterbacks: QB slot plus seven bench slots absorb
	// eight, the ninth has nowhere to go.
	quota := []string{"RB", "RB", "RB", "RB", "WR", "WR", "WR", "WR", "TE", "TE", "TE", "TE", "TE", "TE"}
	qbs, taken, team2 := 0, map[string]int{}, 0
	for qbs < 8 {
		if d.CurrentPicker() == 1 {
			qbs++
			_, err := d.SubmitPick(fmt.Sprintf("QB-%02d", qbs))
			require.NoError(t, err)
		} else {
			pos := quota[team2]
			team2++
			taken[pos]++
			_, err := d.SubmitPick(fmt.Sprintf("%s-%02d", pos, taken[pos]))
			require.NoError(t, err)
		}
	}
	for d.CurrentPicker() != 1 {
		pos := quota[team2]
		team2++
		taken[pos]++
		_, err := d.SubmitPick(fmt.Sprintf("%s-%02d", pos, taken[pos]))
		require.NoError(t, err)
	}

	pickBefore := d.PickNumber()
	poolBefore := d.PoolSize()
	_, err := d.SubmitPick("QB-09")
	assert.ErrorIs(t, err, ErrRosterOverflow)
	assert.Equal(t, pickBefore, d.PickNumber(), "rejected pick must not advance the draft")
	assert.Equal(t, poolBefore, d.PoolSize(), "rejected pick must not touch the pool")
}

func TestRecommendations_OnlyOnUserTurn(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	require.NoError(t, d.Configure(4, 2))

	// Pick 1 belongs to team 1: no recommendations for the user.
	assert.Empty(t, d.Recommendations())

	_, err := d.SubmitPick("RB-01")
	require.NoError(t, err)

	// Now the user is on the clock.
	require.True(t, d.UserOnClock())
	recs := d.Recommendations()
	require.Len(t, recs, 5)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestRecommendations_EmptyWindowAtRoundBoundary(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	require.NoError(t, d.Configure(4, 4))

	players := bigPool(t, 40).Players()
	for i := 0; i < 3; i++ {
		_, err := d.SubmitPick(players[i].Name)
		require.NoError(t, err)
	}
	// Pick 4: the user picks back-to-back across the round boundary.
	require.True(t, d.UserOnClock())
	recs := d.Recommendations()
	require.Len(t, recs, 5, "empty lookahead must not fail")
}

func TestRoster_Validation(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	_, err := d.Roster(1)
	assert.ErrorIs(t, err, ErrNotStarted)

	require.NoError(t, d.Configure(4, 1))
	_, err = d.Roster(0)
	assert.ErrorIs(t, err, ErrUnknownTeam)
	_, err = d.Roster(5)
	assert.ErrorIs(t, err, ErrUnknownTeam)
	view, err := d.Roster(4)
	require.NoError(t, err)
	assert.Len(t, view, 14)
}

func TestSetScoringWeights(t *testing.T) {
	d := New(bigPool(t, 40), nil)
	require.NoError(t, d.SetScoringWeights(Weights{ADP: 1, VONA: 0, Need: 0}))
	assert.Equal(t, Weights{ADP: 1}, d.ScoringWeights())
	assert.ErrorIs(t, d.SetScoringWeights(Weights{Need: -1}), ErrNegativeWeight)
}
