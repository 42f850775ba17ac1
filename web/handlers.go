package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/The-Yester/Pickem/controller"
	"github.com/The-Yester/Pickem/db"
	"github.com/The-Yester/Pickem/model"
	"github.com/The-Yester/Pickem/sheets"
)

type errorResponse struct {
	Error string `json:"error"`
}

type userView struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func viewForUser(u *model.User) userView {
	return userView{
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	}
}

type matchupView struct {
	UniqueID   string `json:"uniqueId"`
	Week       int    `json:"week"`
	GameDate   string `json:"gameDate,omitempty"`
	GameTimeET string `json:"gameTimeEt,omitempty"`

	AwayTeamName        string  `json:"awayTeamName"`
	AwayTeamAbbr        string  `json:"awayTeamAbbr"`
	AwayTeamLogo        string  `json:"awayTeamLogo,omitempty"`
	AwayProjectedPoints float64 `json:"awayProjectedPoints"`

	HomeTeamName        string  `json:"homeTeamName"`
	HomeTeamAbbr        string  `json:"homeTeamAbbr"`
	HomeTeamLogo        string  `json:"homeTeamLogo,omitempty"`
	HomeProjectedPoints float64 `json:"homeProjectedPoints"`

	WinningTeam string `json:"winningTeam,omitempty"`
}

func viewForMatchup(m *model.Matchup) matchupView {
	return matchupView{
		UniqueID:            m.UniqueID,
		Week:                m.Week,
		GameDate:            m.GameDate,
		GameTimeET:          m.GameTimeET,
		AwayTeamName:        m.AwayTeamName,
		AwayTeamAbbr:        m.AwayTeamAbbr,
		AwayTeamLogo:        m.AwayTeamLogo,
		AwayProjectedPoints: m.AwayProjectedPoints,
		HomeTeamName:        m.HomeTeamName,
		HomeTeamAbbr:        m.HomeTeamAbbr,
		HomeTeamLogo:        m.HomeTeamLogo,
		HomeProjectedPoints: m.HomeProjectedPoints,
		WinningTeam:         m.WinningTeam,
	}
}

type pickResultView struct {
	Matchup        matchupView   `json:"matchup"`
	PickedTeamAbbr string        `json:"pickedTeamAbbr,omitempty"`
	Verdict        model.Verdict `json:"verdict"`
	Points         int           `json:"points"`
}

type weekPicksResponse struct {
	Week    int              `json:"week"`
	Score   int              `json:"score"`
	Results []pickResultView `json:"results"`
}

type statsView struct {
	Correct     int     `json:"correct"`
	Incorrect   int     `json:"incorrect"`
	GamesGraded int     `json:"gamesGraded"`
	TotalPicks  int     `json:"totalPicks"`
	Accuracy    float64 `json:"accuracy"`
}

type leaderboardEntryView struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Correct     int    `json:"correct"`
	Rank        int    `json:"rank"`
}

func registerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing request: %v", err)})
			return
		}

		u, err := ctrl.RegisterUser(r.Context(), req.Username, req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, db.ErrUserExists) {
				render.JSON(w, http.StatusConflict, errorResponse{Error: "an account with this email or username already exists"})
			} else {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusCreated, viewForUser(u))
	}
}

func loginHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing request: %v", err)})
			return
		}

		u, err := ctrl.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, controller.ErrInvalidCredentials) {
				render.JSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid username or password"})
			} else {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, viewForUser(u))
	}
}

func matchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var matchups []model.Matchup
		var err error

		if weekParam := r.URL.Query().Get("week"); weekParam != "" {
			week, perr := strconv.Atoi(weekParam)
			if perr != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing week: %v", perr)})
				return
			}
			matchups, err = ctrl.GetWeekMatchups(r.Context(), week)
		} else {
			matchups, err = ctrl.GetMatchups(r.Context())
		}
		if err != nil {
			renderError(render, w, err)
			return
		}

		views := make([]matchupView, 0, len(matchups))
		for i := range matchups {
			views = append(views, viewForMatchup(&matchups[i]))
		}
		render.JSON(w, http.StatusOK, views)
	}
}

func weekPicksHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		week, err := strconv.Atoi(r.URL.Query().Get("week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing week: %v", err)})
			return
		}

		results, score, err := ctrl.GetWeekPickResults(r.Context(), username, week)
		if err != nil {
			renderError(render, w, err)
			return
		}

		resp := weekPicksResponse{
			Week:    week,
			Score:   score,
			Results: make([]pickResultView, 0, len(results)),
		}
		for _, res := range results {
			resp.Results = append(resp.Results, pickResultView{
				Matchup:        viewForMatchup(&res.Matchup),
				PickedTeamAbbr: res.PickedTeamAbbr,
				Verdict:        res.Verdict,
				Points:         res.Points,
			})
		}
		render.JSON(w, http.StatusOK, resp)
	}
}

func savePicksHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil || week < 1 {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "week must be a number 1 or greater"})
			return
		}

		var req []struct {
			GameUniqueID   string `json:"gameUniqueId"`
			PickedTeamAbbr string `json:"pickedTeamAbbr"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing request: %v", err)})
			return
		}

		picks := make([]model.Pick, 0, len(req))
		for _, p := range req {
			picks = append(picks, model.Pick{
				GameUniqueID:   p.GameUniqueID,
				PickedTeamAbbr: p.PickedTeamAbbr,
			})
		}

		if err := ctrl.SaveWeekPicks(r.Context(), username, week, picks); err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]int{"saved": len(picks)})
	}
}

func statsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		week := 0 // all weeks
		if weekParam := r.URL.Query().Get("week"); weekParam != "" {
			var err error
			week, err = strconv.Atoi(weekParam)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing week: %v", err)})
				return
			}
		}

		s, err := ctrl.GetUserScoreSummary(r.Context(), username, week)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, statsView{
			Correct:     s.Correct,
			Incorrect:   s.Incorrect,
			GamesGraded: s.GamesGraded,
			TotalPicks:  s.TotalPicks,
			Accuracy:    s.Accuracy,
		})
	}
}

func leaderboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := ctrl.GetLeaderboard(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		// The stats screen uses a small slice of the board for its
		// top-scorers chart.
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			limit, perr := strconv.Atoi(limitParam)
			if perr != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("error parsing limit: %v", perr)})
				return
			}
			if limit >= 0 && limit < len(entries) {
				entries = entries[:limit]
			}
		}

		views := make([]leaderboardEntryView, 0, len(entries))
		for _, e := range entries {
			views = append(views, leaderboardEntryView{
				Username:    e.Username,
				DisplayName: e.DisplayName,
				Correct:     e.Correct,
				Rank:        e.Rank,
			})
		}
		render.JSON(w, http.StatusOK, views)
	}
}

// renderError maps domain errors to status codes. A matchup-source
// failure is a retryable condition for the app, so it gets 503 rather
// than a generic 500.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrUserNotFound):
		render.JSON(w, http.StatusNotFound, errorResponse{Error: "user not found"})
	case errors.Is(err, controller.ErrUnknownGame):
		render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, sheets.ErrUnavailable):
		render.JSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
