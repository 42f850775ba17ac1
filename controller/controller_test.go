package controller

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/The-Yester/Pickem/model"
	"github.com/The-Yester/Pickem/sheets"
	"github.com/The-Yester/Pickem/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()
	code := m.Run()
	os.Exit(code)
}

// Exercises the whole flow against a real database and the fake sheet:
// log in, save picks, read them back graded, and land on the
// leaderboard.
func TestPickSeason_endToEnd(t *testing.T) {
	testCtrl := testutils.NewTestController(testDB)
	defer testCtrl.Close()

	client := sheets.NewForTest(testCtrl.SheetsURL(), sheets.Config{
		APIKey:        testutils.TestAPIKey,
		SpreadsheetID: testutils.TestSpreadsheetID,
		Range:         testutils.TestRange,
	})

	ctrl, err := New(testCtrl.Clock, testDB.DB, client)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	ctx := context.Background()

	alice, err := ctrl.Authenticate(ctx, testutils.Alice.Username, testutils.TestPassword)
	if err != nil {
		t.Fatalf("error authenticating: %v", err)
	}

	// Week 1 on the fake sheet is fully decided: DET won W1G1, GB won
	// W1G2, and W1G3's winner is recorded as the bare abbreviation
	// "PHI". Week 2 has no results yet.
	week1 := []model.Pick{
		{GameUniqueID: "W1G1", PickedTeamAbbr: "det"},
		{GameUniqueID: "W1G2", PickedTeamAbbr: "MIN"},
		{GameUniqueID: "W1G3", PickedTeamAbbr: "PHI"},
	}
	if err := ctrl.SaveWeekPicks(ctx, alice.Username, 1, week1); err != nil {
		t.Fatalf("error saving week 1 picks: %v", err)
	}

	week2 := []model.Pick{
		{GameUniqueID: "W2G1", PickedTeamAbbr: "GB"},
	}
	if err := ctrl.SaveWeekPicks(ctx, alice.Username, 2, week2); err != nil {
		t.Fatalf("error saving week 2 picks: %v", err)
	}

	results, score, err := ctrl.GetWeekPickResults(ctx, alice.Username, 1)
	if err != nil {
		t.Fatalf("error getting pick results: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if score != 2 {
		t.Errorf("expected a week score of 2, got %d", score)
	}

	verdicts := map[string]model.Verdict{}
	for _, r := range results {
		verdicts[r.Matchup.UniqueID] = r.Verdict
	}
	if verdicts["W1G1"] != model.VerdictCorrect {
		t.Errorf("W1G1 - expected CORRECT, got %s", verdicts["W1G1"])
	}
	if verdicts["W1G2"] != model.VerdictIncorrect {
		t.Errorf("W1G2 - expected INCORRECT, got %s", verdicts["W1G2"])
	}
	if verdicts["W1G3"] != model.VerdictCorrect {
		t.Errorf("W1G3 - expected CORRECT, got %s", verdicts["W1G3"])
	}

	summary, err := ctrl.GetUserScoreSummary(ctx, alice.Username, 0)
	if err != nil {
		t.Fatalf("error getting score summary: %v", err)
	}
	if summary.Correct != 2 || summary.Incorrect != 1 || summary.TotalPicks != 4 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.GamesGraded != 3 {
		t.Errorf("expected 3 graded games, got %d", summary.GamesGraded)
	}

	// Resubmitting the identical set changes nothing.
	if err := ctrl.SaveWeekPicks(ctx, alice.Username, 1, week1); err != nil {
		t.Fatalf("error resaving week 1 picks: %v", err)
	}
	resaved, err := ctrl.GetUserScoreSummary(ctx, alice.Username, 0)
	if err != nil {
		t.Fatalf("error getting score summary: %v", err)
	}
	if *resaved != *summary {
		t.Errorf("summary changed after an identical resave: %+v vs %+v", resaved, summary)
	}

	entries, err := ctrl.GetLeaderboard(ctx)
	if err != nil {
		t.Fatalf("error getting leaderboard: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected a non-empty leaderboard")
	}
	if entries[0].Username != alice.Username {
		t.Errorf("expected %s on top of the leaderboard, got %s", alice.Username, entries[0].Username)
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entries[%d].Rank - expected: %d, got: %d", i, i+1, e.Rank)
		}
	}
}
