package draft

// Slot identifies one of the 14 roster slots every team fills over a
// draft.
type Slot string

const (
	SlotQB   Slot = "QB"
	SlotRB1  Slot = "RB1"
	SlotRB2  Slot = "RB2"
	SlotWR1  Slot = "WR1"
	SlotWR2  Slot = "WR2"
	SlotTE   Slot = "TE"
	SlotFLEX Slot = "FLEX"
	SlotB1   Slot = "B1"
	SlotB2   Slot = "B2"
	SlotB3   Slot = "B3"
	SlotB4   Slot = "B4"
	SlotB5   Slot = "B5"
	SlotB6   Slot = "B6"
	SlotB7   Slot = "B7"
)

// SlotOrder is the display and iteration order of a roster.
var SlotOrder = []Slot{
	SlotQB, SlotRB1, SlotRB2, SlotWR1, SlotWR2, SlotTE, SlotFLEX,
	SlotB1, SlotB2, SlotB3, SlotB4, SlotB5, SlotB6, SlotB7,
}

var benchSlots = []Slot{SlotB1, SlotB2, SlotB3, SlotB4, SlotB5, SlotB6, SlotB7}

// startingSlotsFor returns the starting slots a position contends for,
// in fill-priority order. QB and TE never use FLEX; once their single
// slot is taken they fall straight to the bench. Unknown positions go
// directly to the bench.
func startingSlotsFor(position string) []Slot {
	switch position {
	case PositionQB:
		return []Slot{SlotQB}
	case PositionRB:
		return []Slot{SlotRB1, SlotRB2, SlotFLEX}
	case PositionWR:
		return []Slot{SlotWR1, SlotWR2, SlotFLEX}
	case PositionTE:
		return []Slot{SlotTE}
	default:
		return nil
	}
}

// Roster is one team's 14-slot roster. Slots fill monotonically: each
// holds at most one player and is never vacated for the lifetime of a
// draft.
type Roster struct {
	occupants      map[Slot]string
	positionCounts map[string]int
}

// NewRoster returns an empty 14-slot roster.
func NewRoster() *Roster {
	return &Roster{
		occupants:      make(map[Slot]string, len(SlotOrder)),
		positionCounts: make(map[string]int),
	}
}

// Occupant returns the player filling a slot, or "" if it is open.
func (r *Roster) Occupant(slot Slot) string {
	return r.occupants[slot]
}

// Filled reports whether a slot holds a player.
func (r *Roster) Filled(slot Slot) bool {
	return r.occupants[slot] != ""
}

// Size returns the number of filled slots.
func (r *Roster) Size() int {
	return len(r.occupants)
}

// CountAtPosition returns how many rostered players carry a position,
// regardless of which slot absorbed them.
func (r *Roster) CountAtPosition(position string) int {
	return r.positionCounts[position]
}

// Assign places a drafted player into the first eligible open slot:
// the position's starting slots in priority order, then the
// lowest-indexed open bench slot. Returns the slot filled, or
// ErrRosterOverflow when all 14 slots are taken; on failure the roster
// is untouched.
func (r *Roster) Assign(player Player) (Slot, error) {
	for _, slot := range startingSlotsFor(player.Position) {
		if !r.Filled(slot) {
			r.place(slot, player)
			return slot, nil
		}
	}
	for _, slot := range benchSlots {
		if !r.Filled(slot) {
			r.place(slot, player)
			return slot, nil
		}
	}
	return "", ErrRosterOverflow
}

func (r *Roster) place(slot Slot, player Player) {
	r.occupants[slot] = player.Name
	r.positionCounts[player.Position]++
}

// WouldStart reports whether drafting a player at this position would
// fill a starting slot rather than the bench, using the same emptiness
// test Assign applies.
func (r *Roster) WouldStart(position string) bool {
	for _, slot := range startingSlotsFor(position) {
		if !r.Filled(slot) {
			return true
		}
	}
	return false
}

// Needs reports whether this team still needs a position for scarcity
// accounting: QB and TE while their single slot is open; RB while RB1
// or RB2 is open, or FLEX is open and the team holds no WRs; WR
// symmetrically.
func (r *Roster) Needs(position string) bool {
	switch position {
	case PositionQB:
		return !r.Filled(SlotQB)
	case PositionTE:
		return !r.Filled(SlotTE)
	case PositionRB:
		if !r.Filled(SlotRB1) || !r.Filled(SlotRB2) {
			return true
		}
		return !r.Filled(SlotFLEX) && r.CountAtPosition(PositionWR) == 0
	case PositionWR:
		if !r.Filled(SlotWR1) || !r.Filled(SlotWR2) {
			return true
		}
		return !r.Filled(SlotFLEX) && r.CountAtPosition(PositionRB) == 0
	default:
		return false
	}
}

// View returns the roster as an ordered slot -> player mapping, with
// "" for open slots.
func (r *Roster) View() []SlotView {
	view := make([]SlotView, 0, len(SlotOrder))
	for _, slot := range SlotOrder {
		view = append(view, SlotView{Slot: slot, Player: r.occupants[slot]})
	}
	return view
}

// SlotView is one row of a roster view.
type SlotView struct {
	Slot   Slot   `json:"slot"`
	Player string `json:"player,omitempty"`
}
