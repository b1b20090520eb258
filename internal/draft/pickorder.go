package draft

// RosterRounds is the number of draft rounds, fixed by the 14 roster
// slots every team fills.
const RosterRounds = 14

// GeneratePickOrder produces the serpentine pick order for a draft:
// one 1-based team index per pick, length numTeams*RosterRounds.
// Round 1 runs 1..numTeams ascending, round 2 descending, alternating
// for all rounds. Computed once per configuration; the team count
// never changes mid-draft.
func GeneratePickOrder(numTeams int) []int {
	if numTeams < 1 {
		return nil
	}
	order := make([]int, 0, numTeams*RosterRounds)
	for round := 0; round < RosterRounds; round++ {
		if round%2 == 0 {
			for team := 1; team <= numTeams; team++ {
				order = append(order, team)
			}
		} else {
			for team := numTeams; team >= 1; team-- {
				order = append(order, team)
			}
		}
	}
	return order
}

// lookaheadWindow returns the ordered team indices picking from pick
// number `from` (1-based, inclusive) until the next pick belonging to
// `user`, exclusive. Repeated indices are kept; at a round boundary a
// team picks back-to-back and counts twice toward scarcity.
func lookaheadWindow(order []int, from, user int) []int {
	window := []int{}
	for i := from - 1; i < len(order); i++ {
		if order[i] == user {
			break
		}
		window = append(window, order[i])
	}
	return window
}
