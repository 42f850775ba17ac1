package controller

import (
	"context"

	"github.com/The-Yester/Pickem/db"
	"github.com/The-Yester/Pickem/model"
	"github.com/The-Yester/Pickem/sheets"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers.
// Every screen that needs pick grading goes through this one
// implementation instead of carrying its own copy of the rules.
type C interface {
	// RegisterUser creates a new account. The password is hashed before
	// it is stored; db.ErrUserExists is returned for duplicate
	// usernames or emails.
	RegisterUser(ctx context.Context, username, name, email, password string) (*model.User, error)
	// Authenticate checks a username/password pair and returns the user
	// on success, ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)

	GetMatchups(ctx context.Context) ([]model.Matchup, error)
	GetWeekMatchups(ctx context.Context, week int) ([]model.Matchup, error)

	// SaveWeekPicks replaces all of the user's picks for the week with
	// the given set. Every pick must reference a game scheduled in that
	// week.
	SaveWeekPicks(ctx context.Context, username string, week int, picks []model.Pick) error
	// GetWeekPickResults grades the user's picks for one week, one
	// result per scheduled game, plus the week's total score.
	GetWeekPickResults(ctx context.Context, username string, week int) ([]model.PickResult, int, error)
	// GetUserScoreSummary aggregates the user's graded picks. A week
	// value <= 0 means the whole season.
	GetUserScoreSummary(ctx context.Context, username string, week int) (*model.ScoreSummary, error)
	// GetLeaderboard ranks every registered user by season-long correct
	// picks.
	GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}

type controller struct {
	clock  clock.Clock
	db     db.DB
	sheets sheets.Client
}

func New(clock clock.Clock, db db.DB, sheets sheets.Client) (C, error) {
	c := &controller{
		clock:  clock,
		db:     db,
		sheets: sheets,
	}
	return c, nil
}

func (c *controller) GetMatchups(ctx context.Context) ([]model.Matchup, error) {
	return c.sheets.LoadMatchups(ctx)
}

func (c *controller) GetWeekMatchups(ctx context.Context, week int) ([]model.Matchup, error) {
	matchups, err := c.sheets.LoadMatchups(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Matchup, 0, len(matchups))
	for _, m := range matchups {
		if m.Week == week {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}
