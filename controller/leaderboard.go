package controller

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/The-Yester/Pickem/model"
)

func (c *controller) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	users, err := c.db.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users for leaderboard: %w", err)
	}
	if len(users) == 0 {
		return []model.LeaderboardEntry{}, nil
	}

	matchups, err := c.sheets.LoadMatchups(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading matchups for leaderboard: %w", err)
	}

	// Fan out one pick read per user, then join before ranking. A
	// failed read fails the whole build; a leaderboard computed from
	// partial data would silently misrank everyone else.
	type userResult struct {
		correct int
		err     error
	}
	results := make([]userResult, len(users))

	var wg sync.WaitGroup
	for i := range users {
		wg.Add(1)
		go func(i int, username string) {
			defer wg.Done()
			picks, err := c.db.GetPicks(ctx, username)
			if err != nil {
				results[i].err = err
				return
			}
			s := summarize(matchups, picks, 0)
			results[i].correct = s.Correct
		}(i, users[i].Username)
	}
	wg.Wait()

	entries := make([]model.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		if results[i].err != nil {
			return nil, fmt.Errorf("error loading picks for %s: %w", u.Username, results[i].err)
		}
		entries = append(entries, model.LeaderboardEntry{
			Username:    u.Username,
			DisplayName: u.DisplayName(),
			Correct:     results[i].correct,
		})
	}

	// Most correct picks first; ties broken by display name using a
	// locale-aware comparison, the way the app sorts names on screen.
	coll := collate.New(language.English)
	slices.SortFunc(entries, func(a, b model.LeaderboardEntry) int {
		if a.Correct != b.Correct {
			return b.Correct - a.Correct
		}
		return coll.CompareString(a.DisplayName, b.DisplayName)
	})

	// Ranks are distinct and sequential even when scores tie.
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
