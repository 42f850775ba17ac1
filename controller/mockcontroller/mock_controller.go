package mockcontroller

import (
	"context"

	"github.com/The-Yester/Pickem/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) RegisterUser(ctx context.Context, username, name, email, password string) (*model.User, error) {
	args := c.Called(ctx, username, name, email, password)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (c *C) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	args := c.Called(ctx, username, password)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (c *C) GetUser(ctx context.Context, username string) (*model.User, error) {
	args := c.Called(ctx, username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (c *C) GetMatchups(ctx context.Context) ([]model.Matchup, error) {
	args := c.Called(ctx)

	var m []model.Matchup
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Matchup)
	}
	return m, args.Error(1)
}

func (c *C) GetWeekMatchups(ctx context.Context, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, week)

	var m []model.Matchup
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Matchup)
	}
	return m, args.Error(1)
}

func (c *C) SaveWeekPicks(ctx context.Context, username string, week int, picks []model.Pick) error {
	args := c.Called(ctx, username, week, picks)
	return args.Error(0)
}

func (c *C) GetWeekPickResults(ctx context.Context, username string, week int) ([]model.PickResult, int, error) {
	args := c.Called(ctx, username, week)

	var r []model.PickResult
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PickResult)
	}
	return r, args.Int(1), args.Error(2)
}

func (c *C) GetUserScoreSummary(ctx context.Context, username string, week int) (*model.ScoreSummary, error) {
	args := c.Called(ctx, username, week)

	var s *model.ScoreSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*model.ScoreSummary)
	}
	return s, args.Error(1)
}

func (c *C) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	args := c.Called(ctx)

	var e []model.LeaderboardEntry
	if args.Get(0) != nil {
		e = args.Get(0).([]model.LeaderboardEntry)
	}
	return e, args.Error(1)
}
