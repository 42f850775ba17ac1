package model

import "time"

// Pick is one user's prediction for one game. A user has at most one
// pick per game; saving picks for a week replaces all prior picks for
// that week.
type Pick struct {
	GameUniqueID   string
	Week           int
	PickedTeamAbbr string
	Created        time.Time
}

// Verdict is the graded outcome of one pick against one matchup's
// result. It is derived on demand and never persisted.
type Verdict string

const (
	VerdictCorrect   Verdict = "CORRECT"
	VerdictIncorrect Verdict = "INCORRECT"
	VerdictPending   Verdict = "PENDING"
	VerdictNoPick    Verdict = "NO_PICK"
)

// PickResult pairs a matchup with a user's pick and its verdict, for
// per-game display.
type PickResult struct {
	Matchup        Matchup
	PickedTeamAbbr string
	Verdict        Verdict
	Points         int
}
