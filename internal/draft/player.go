package draft

import (
	"fmt"
	"sort"
)

// Player is a single draftable player from the ADP rankings feed.
// Immutable once loaded; a drafted player is removed from the pool,
// never mutated.
type Player struct {
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Bye      int     `json:"bye"`
	Position string  `json:"position"`
	ADP      float64 `json:"adp"`
}

// Scored positions. Other labels (K, DST, ...) pass through the pool
// as opaque positions and fall straight to the bench when drafted.
const (
	PositionQB = "QB"
	PositionRB = "RB"
	PositionWR = "WR"
	PositionTE = "TE"
)

// Pool holds the undrafted players for one draft session, ordered by
// ADP ascending. Lookup and removal are by player name, which is the
// unique key within a pool.
type Pool struct {
	players []Player
	byName  map[string]int
}

// NewPool builds a pool from a loaded ranking feed. Names must be
// unique and ADP values positive.
func NewPool(players []Player) (*Pool, error) {
	p := &Pool{
		players: make([]Player, len(players)),
		byName:  make(map[string]int, len(players)),
	}
	copy(p.players, players)
	sort.SliceStable(p.players, func(i, j int) bool {
		return p.players[i].ADP < p.players[j].ADP
	})
	for i, pl := range p.players {
		if pl.Name == "" {
			return nil, fmt.Errorf("pool: player at rank %d has no name", i+1)
		}
		if pl.ADP <= 0 {
			return nil, fmt.Errorf("pool: player %q has non-positive ADP %.2f", pl.Name, pl.ADP)
		}
		if _, dup := p.byName[pl.Name]; dup {
			return nil, fmt.Errorf("pool: duplicate player %q", pl.Name)
		}
		p.byName[pl.Name] = i
	}
	return p, nil
}

// Len returns the number of undrafted players.
func (p *Pool) Len() int {
	return len(p.players)
}

// Get returns the player by name, and whether they are still undrafted.
func (p *Pool) Get(name string) (Player, bool) {
	i, ok := p.byName[name]
	if !ok {
		return Player{}, false
	}
	return p.players[i], true
}

// Remove drops a drafted player from the pool.
func (p *Pool) Remove(name string) bool {
	i, ok := p.byName[name]
	if !ok {
		return false
	}
	p.players = append(p.players[:i], p.players[i+1:]...)
	delete(p.byName, name)
	for j := i; j < len(p.players); j++ {
		p.byName[p.players[j].Name] = j
	}
	return true
}

// Players returns the undrafted players in ADP order. The slice is a
// copy; callers may not mutate pool state through it.
func (p *Pool) Players() []Player {
	out := make([]Player, len(p.players))
	copy(out, p.players)
	return out
}

// AtPosition returns the undrafted players at one position, in ADP order.
func (p *Pool) AtPosition(position string) []Player {
	var out []Player
	for _, pl := range p.players {
		if pl.Position == position {
			out = append(out, pl)
		}
	}
	return out
}
