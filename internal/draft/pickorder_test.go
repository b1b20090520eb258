package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePickOrder_SnakeSymmetry(t *testing.T) {
	for _, numTeams := range []int{2, 4, 10, 12} {
		order := GeneratePickOrder(numTeams)
		require.Len(t, order, numTeams*RosterRounds, "order length for %d teams", numTeams)

		for round := 0; round < RosterRounds-1; round++ {
			current := order[round*numTeams : (round+1)*numTeams]
			next := order[(round+1)*numTeams : (round+2)*numTeams]
			for i := 0; i < numTeams; i++ {
				assert.Equal(t, current[i], next[numTeams-1-i],
					"round %d should reverse round %d for %d teams", round+2, round+1, numTeams)
			}
		}
	}
}

func TestGeneratePickOrder_FourTeams(t *testing.T) {
	order := GeneratePickOrder(4)
	assert.Equal(t, []int{1, 2, 3, 4}, order[:4])
	assert.Equal(t, []int{4, 3, 2, 1}, order[4:8])
	assert.Equal(t, []int{1, 2, 3, 4}, order[8:12])
}

func TestGeneratePickOrder_ClosedForm(t *testing.T) {
	// The generated order must agree with the closed form for 1-based
	// pick index i with m = i mod 2N.
	numTeams := 10
	order := GeneratePickOrder(numTeams)
	for i := 1; i <= len(order); i++ {
		m := i % (2 * numTeams)
		var want int
		switch {
		case m == 0:
			want = 1 // last pick of an even round snakes back to team 1
		case m <= numTeams:
			want = m
		default:
			want = 2*numTeams - m + 1
		}
		assert.Equal(t, want, order[i-1], "pick %d", i)
	}
}

func TestGeneratePickOrder_RejectsNonPositive(t *testing.T) {
	assert.Nil(t, GeneratePickOrder(0))
	assert.Nil(t, GeneratePickOrder(-3))
}

func TestLookaheadWindow(t *testing.T) {
	order := GeneratePickOrder(4) // 1 2 3 4 | 4 3 2 1 | ...
	// User is team 2, on the clock at pick 2: teams 3, 4, 4, 3 pick
	// before their next turn at pick 7.
	window := lookaheadWindow(order, 3, 2)
	assert.Equal(t, []int{3, 4, 4, 3}, window)

	// User is team 4 at pick 4: back-to-back turn, empty window.
	window = lookaheadWindow(order, 5, 4)
	assert.Empty(t, window)
}
