package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/The-Yester/Pickem/model"
)

// ErrUnknownGame is returned when a submitted pick references a game
// that is not scheduled in the target week.
var ErrUnknownGame = errors.New("unknown game")

// resolveVerdict grades one pick against one matchup. It never fails;
// every (matchup, pick) pair classifies as exactly one verdict:
//   - no pick for the game      -> NO_PICK, result or not
//   - pick but no result yet    -> PENDING
//   - otherwise                 -> CORRECT or INCORRECT
func resolveVerdict(m *model.Matchup, pick *model.Pick) model.Verdict {
	if pick == nil {
		return model.VerdictNoPick
	}
	if !m.HasResult() {
		return model.VerdictPending
	}

	if model.NormalizeAbbr(pick.PickedTeamAbbr) == winningAbbr(m) {
		return model.VerdictCorrect
	}
	return model.VerdictIncorrect
}

// winningAbbr resolves the sheet's WinningTeam value to a normalized
// abbreviation. The value is expected to be a full team name; when it
// matches neither side's name it is assumed to already be an
// abbreviation. That fallback masks data-entry mistakes on the sheet,
// so it is logged rather than silently trusted.
func winningAbbr(m *model.Matchup) string {
	winner := strings.TrimSpace(m.WinningTeam)

	if strings.TrimSpace(m.HomeTeamName) == winner {
		return model.NormalizeAbbr(m.HomeTeamAbbr)
	}
	if strings.TrimSpace(m.AwayTeamName) == winner {
		return model.NormalizeAbbr(m.AwayTeamAbbr)
	}

	log.Printf("WinningTeam %q for game %s did not match either team name; assuming it is an abbreviation", winner, m.UniqueID)
	return model.NormalizeAbbr(winner)
}

// findPick returns the user's pick for the game, or nil if none was
// made. A game id may reference a matchup that is no longer on the
// sheet; such orphaned picks simply never match.
func findPick(picks []model.Pick, gameUniqueID string) *model.Pick {
	for i := range picks {
		if picks[i].GameUniqueID == gameUniqueID {
			return &picks[i]
		}
	}
	return nil
}

// summarize folds verdicts over the matchup set into a score summary.
// week <= 0 means all weeks. Pending and unpicked games are excluded
// from GamesGraded; TotalPicks counts submitted picks regardless of
// grading state.
func summarize(matchups []model.Matchup, picks []model.Pick, week int) model.ScoreSummary {
	var s model.ScoreSummary
	for i := range matchups {
		m := &matchups[i]
		if week > 0 && m.Week != week {
			continue
		}
		switch resolveVerdict(m, findPick(picks, m.UniqueID)) {
		case model.VerdictCorrect:
			s.Correct++
		case model.VerdictIncorrect:
			s.Incorrect++
		}
	}
	s.GamesGraded = s.Correct + s.Incorrect

	for _, p := range picks {
		if week <= 0 || p.Week == week {
			s.TotalPicks++
		}
	}

	if s.GamesGraded > 0 {
		s.Accuracy = 100 * float64(s.Correct) / float64(s.GamesGraded)
	}
	return s
}

func (c *controller) GetUserScoreSummary(ctx context.Context, username string, week int) (*model.ScoreSummary, error) {
	if _, err := c.db.GetUser(ctx, username); err != nil {
		return nil, err
	}

	matchups, err := c.sheets.LoadMatchups(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading matchups for stats: %w", err)
	}

	picks, err := c.db.GetPicks(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error loading picks for %s: %w", username, err)
	}

	s := summarize(matchups, picks, week)
	return &s, nil
}

func (c *controller) GetWeekPickResults(ctx context.Context, username string, week int) ([]model.PickResult, int, error) {
	if _, err := c.db.GetUser(ctx, username); err != nil {
		return nil, 0, err
	}

	matchups, err := c.sheets.LoadMatchups(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error loading matchups for week %d: %w", week, err)
	}

	picks, err := c.db.GetPicks(ctx, username)
	if err != nil {
		return nil, 0, fmt.Errorf("error loading picks for %s: %w", username, err)
	}

	results := make([]model.PickResult, 0, 16)
	score := 0
	for i := range matchups {
		m := &matchups[i]
		if m.Week != week {
			continue
		}

		pick := findPick(picks, m.UniqueID)
		r := model.PickResult{
			Matchup: *m,
			Verdict: resolveVerdict(m, pick),
		}
		if pick != nil {
			r.PickedTeamAbbr = pick.PickedTeamAbbr
		}
		if r.Verdict == model.VerdictCorrect {
			r.Points = 1
			score++
		}
		results = append(results, r)
	}

	return results, score, nil
}

func (c *controller) SaveWeekPicks(ctx context.Context, username string, week int, picks []model.Pick) error {
	if week < 1 {
		return fmt.Errorf("week must be 1 or greater, got %d", week)
	}
	if _, err := c.db.GetUser(ctx, username); err != nil {
		return err
	}

	weekMatchups, err := c.GetWeekMatchups(ctx, week)
	if err != nil {
		return fmt.Errorf("error loading matchups for week %d: %w", week, err)
	}

	games := make(map[string]bool, len(weekMatchups))
	for _, m := range weekMatchups {
		games[m.UniqueID] = true
	}

	// Last write wins when the same game appears more than once in the
	// submission.
	byGame := make(map[string]model.Pick, len(picks))
	order := make([]string, 0, len(picks))
	for _, p := range picks {
		if !games[p.GameUniqueID] {
			return fmt.Errorf("%w: game %s is not scheduled in week %d", ErrUnknownGame, p.GameUniqueID, week)
		}
		if _, seen := byGame[p.GameUniqueID]; !seen {
			order = append(order, p.GameUniqueID)
		}
		p.Week = week
		p.PickedTeamAbbr = model.NormalizeAbbr(p.PickedTeamAbbr)
		byGame[p.GameUniqueID] = p
	}

	toSave := make([]model.Pick, 0, len(byGame))
	for _, id := range order {
		toSave = append(toSave, byGame[id])
	}

	return c.db.ReplaceWeekPicks(ctx, username, week, toSave)
}
