package draft

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Weights are the tunable coefficients of the composite recommendation
// score. Each defaults to a neutral midpoint and can be adjusted
// independently at any point in a session.
type Weights struct {
	ADP  float64 `json:"w_adp"`
	VONA float64 `json:"w_vona"`
	Need float64 `json:"w_need"`
}

// DefaultWeights returns the neutral midpoint for all three terms.
func DefaultWeights() Weights {
	return Weights{ADP: 0.5, VONA: 0.5, Need: 0.5}
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	if w.ADP < 0 || w.VONA < 0 || w.Need < 0 {
		return ErrNegativeWeight
	}
	return nil
}

// ScoredPlayer is one undrafted player with its composite score and
// whether drafting it would fill a starting slot for the requesting
// team.
type ScoredPlayer struct {
	Player
	Score             float64 `json:"score"`
	Needed            bool    `json:"needed"`
	FillsStartingSlot bool    `json:"fills_starting_slot"`
}

// PositionSummary describes the remaining pool at one position.
type PositionSummary struct {
	Position  string  `json:"position"`
	Remaining int     `json:"remaining"`
	BestADP   float64 `json:"best_adp"`
	MeanADP   float64 `json:"mean_adp"`
	StdDevADP float64 `json:"stddev_adp"`
}

var scoredPositions = []string{PositionQB, PositionRB, PositionWR, PositionTE}

// Scorer ranks the undrafted pool for the user by combining raw ADP
// value, value-over-next-available at each position, and how many of
// the teams picking before the user's next turn still need that
// position.
type Scorer struct {
	weights Weights
	topN    int
}

// NewScorer returns a scorer with the given weights, suggesting the
// top topN players per request.
func NewScorer(weights Weights, topN int) *Scorer {
	if topN <= 0 {
		topN = 5
	}
	return &Scorer{weights: weights, topN: topN}
}

// SetWeights replaces the scoring weights.
func (s *Scorer) SetWeights(weights Weights) error {
	if err := weights.Validate(); err != nil {
		return err
	}
	s.weights = weights
	return nil
}

// Weights returns the current scoring weights.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score ranks every undrafted player for the requesting team.
// lookahead is the ordered list of team indices picking before the
// user's next turn; repeats count multiple times toward scarcity.
// rosters maps 1-based team index to roster. An empty lookahead is not
// an error: the VONA and need terms collapse to zero and the ranking
// degenerates to raw ADP value.
func (s *Scorer) Score(pool *Pool, lookahead []int, rosters map[int]*Roster, userRoster *Roster) []ScoredPlayer {
	needCounts := s.needCounts(lookahead, rosters)
	vona := s.vonaByPosition(pool, len(lookahead))

	players := pool.Players()
	scored := make([]ScoredPlayer, 0, len(players))
	for _, pl := range players {
		score := s.weights.ADP * (10 / pl.ADP)
		score += s.weights.VONA * vona[pl.Position]
		score += s.weights.Need * float64(needCounts[pl.Position])
		scored = append(scored, ScoredPlayer{
			Player:            pl,
			Score:             score,
			Needed:            userRoster.Needs(pl.Position),
			FillsStartingSlot: userRoster.WouldStart(pl.Position),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Suggest returns the topN scored players.
func (s *Scorer) Suggest(pool *Pool, lookahead []int, rosters map[int]*Roster, userRoster *Roster) []ScoredPlayer {
	scored := s.Score(pool, lookahead, rosters, userRoster)
	if len(scored) > s.topN {
		scored = scored[:s.topN]
	}
	return scored
}

// needCounts sums, per position, how many lookahead picks belong to a
// team that still needs that position.
func (s *Scorer) needCounts(lookahead []int, rosters map[int]*Roster) map[string]int {
	counts := make(map[string]int, len(scoredPositions))
	for _, team := range lookahead {
		roster, ok := rosters[team]
		if !ok {
			continue
		}
		for _, pos := range scoredPositions {
			if roster.Needs(pos) {
				counts[pos]++
			}
		}
	}
	return counts
}

// vonaByPosition computes the ADP gap between the best remaining
// player at each position and the player expected to be the last one
// available before the user's next turn, i.e. the (window+1)-th
// remaining player at that position. When fewer players remain the gap
// clamps to the worst remaining one; an empty position contributes
// zero.
func (s *Scorer) vonaByPosition(pool *Pool, window int) map[string]float64 {
	vona := make(map[string]float64, len(scoredPositions))
	for _, pos := range scoredPositions {
		remaining := pool.AtPosition(pos)
		if len(remaining) == 0 {
			vona[pos] = 0
			continue
		}
		idx := window
		if idx > len(remaining)-1 {
			idx = len(remaining) - 1
		}
		vona[pos] = remaining[idx].ADP - remaining[0].ADP
	}
	return vona
}

// Summaries reports per-position distribution stats over the remaining
// pool, for the draft-board view.
func Summaries(pool *Pool) []PositionSummary {
	summaries := make([]PositionSummary, 0, len(scoredPositions))
	for _, pos := range scoredPositions {
		remaining := pool.AtPosition(pos)
		summary := PositionSummary{Position: pos, Remaining: len(remaining)}
		if len(remaining) > 0 {
			adps := make([]float64, len(remaining))
			for i, pl := range remaining {
				adps[i] = pl.ADP
			}
			summary.BestADP = adps[0]
			if len(adps) > 1 {
				summary.MeanADP, summary.StdDevADP = stat.MeanStdDev(adps, nil)
			} else {
				summary.MeanADP = adps[0]
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
