package model

import "strings"

// Matchup is one scheduled game in a season, as published on the
// matchup sheet. The sheet is the source of truth; matchups are
// read-only to the rest of the system.
type Matchup struct {
	UniqueID   string
	Week       int
	GameDate   string
	GameTimeET string

	AwayTeamName        string
	AwayTeamAbbr        string
	AwayTeamLogo        string
	AwayProjectedPoints float64

	HomeTeamName        string
	HomeTeamAbbr        string
	HomeTeamLogo        string
	HomeProjectedPoints float64

	// WinningTeam is empty until the game has been decided. It usually
	// holds the winner's full team name, but sheet editors sometimes
	// enter the abbreviation instead.
	WinningTeam string
}

// HasResult reports whether the game has been decided.
func (m *Matchup) HasResult() bool {
	return strings.TrimSpace(m.WinningTeam) != ""
}

// NormalizeAbbr canonicalizes a team abbreviation for comparison.
// Team identity is case- and whitespace-insensitive everywhere, so
// every comparison in the system goes through this one helper.
func NormalizeAbbr(abbr string) string {
	return strings.ToUpper(strings.TrimSpace(abbr))
}
