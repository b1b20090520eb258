package draft

import "errors"

// Configuration errors. Fatal to the configuration step; the caller
// re-prompts and retries.
var (
	ErrInvalidTeamCount  = errors.New("draft: team count must be a positive integer of at least 2")
	ErrInvalidUserSlot   = errors.New("draft: user slot must be between 1 and the team count")
	ErrAlreadyConfigured = errors.New("draft: session already configured")
)

// Pick errors. All recoverable: the pick is rejected and no state is
// mutated.
var (
	ErrNotStarted     = errors.New("draft: session not configured yet")
	ErrDraftComplete  = errors.New("draft: all picks have been made")
	ErrUnknownPlayer  = errors.New("draft: player not in pool (unknown or already drafted)")
	ErrRosterOverflow = errors.New("draft: no open roster slot for pick")
	ErrUnknownTeam    = errors.New("draft: team index out of range")
)

// ErrNegativeWeight rejects scoring weights below zero.
var ErrNegativeWeight = errors.New("draft: scoring weights must be non-negative")
