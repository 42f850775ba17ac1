package model

// ScoreSummary aggregates one user's graded picks over a scope, either
// a single week or the whole season.
type ScoreSummary struct {
	Correct     int
	Incorrect   int
	GamesGraded int // Correct + Incorrect; pending and unpicked games are excluded
	TotalPicks  int // picks submitted, regardless of grading state
	Accuracy    float64
}

// LeaderboardEntry is one ranked row of the season leaderboard.
type LeaderboardEntry struct {
	Username    string
	DisplayName string
	Correct     int
	Rank        int
}
