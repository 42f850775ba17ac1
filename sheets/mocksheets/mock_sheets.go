package mocksheets

import (
	"context"

	"github.com/The-Yester/Pickem/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadMatchups(ctx context.Context) ([]model.Matchup, error) {
	args := c.Called(ctx)

	var matchups []model.Matchup
	if args.Get(0) != nil {
		matchups = args.Get(0).([]model.Matchup)
	}
	return matchups, args.Error(1)
}
