package sheets

import (
	"reflect"
	"testing"

	"github.com/The-Yester/Pickem/model"
)

func TestNormalizeTable(t *testing.T) {
	tests := map[string]struct {
		values   [][]any
		expected []Row
	}{
		"empty": {
			values:   [][]any{},
			expected: nil,
		},
		"header only": {
			values:   [][]any{{"UniqueID", "Week"}},
			expected: nil,
		},
		"trims headers and cells": {
			values: [][]any{
				{" UniqueID ", "HomeTeamName "},
				{"  G1", "  Detroit Lions  "},
			},
			expected: []Row{
				{"UniqueID": "G1", "HomeTeamName": "Detroit Lions"},
			},
		},
		"booleans are case-insensitive": {
			values: [][]any{
				{"A", "B", "C"},
				{"TRUE", "false", "True"},
			},
			expected: []Row{
				{"A": true, "B": false, "C": true},
			},
		},
		"numeric cells become numbers": {
			values: [][]any{
				{"Week", "Points", "Name"},
				{"1", "24.5", "Lions"},
			},
			expected: []Row{
				{"Week": float64(1), "Points": 24.5, "Name": "Lions"},
			},
		},
		"short rows fill missing cells with empty strings": {
			values: [][]any{
				{"UniqueID", "Week", "WinningTeam"},
				{"G1", "1"},
			},
			expected: []Row{
				{"UniqueID": "G1", "Week": float64(1), "WinningTeam": ""},
			},
		},
		"row order preserved": {
			values: [][]any{
				{"UniqueID"},
				{"G2"},
				{"G1"},
				{"G3"},
			},
			expected: []Row{
				{"UniqueID": "G2"},
				{"UniqueID": "G1"},
				{"UniqueID": "G3"},
			},
		},
	}

	for name, tc := range tests {
		got := normalizeTable(tc.values)
		if !reflect.DeepEqual(tc.expected, got) {
			t.Errorf("%s - expected: %v, got: %v", name, tc.expected, got)
		}
	}
}

func TestMatchupFromRow(t *testing.T) {
	values := [][]any{
		{"UniqueID", "Week", "GameDate", "GameTimeET", "AwayTeamName", "AwayTeamAB", "AwayTeamLogo", "AwayTeamProjectedPoints", "HomeTeamName", "HomeTeamAB", "HomeTeamLogo", "HomeTeamProjectedPoints", "WinningTeam"},
		{"W1G1", "1", "2025-09-07", "1:00 PM", "Chicago Bears", "CHI", "https://cdn.example.com/chi.png", "17.5", "Detroit Lions", "DET", "https://cdn.example.com/det.png", "24.5", "Detroit Lions"},
	}

	rows := normalizeTable(values)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	expected := model.Matchup{
		UniqueID:            "W1G1",
		Week:                1,
		GameDate:            "2025-09-07",
		GameTimeET:          "1:00 PM",
		AwayTeamName:        "Chicago Bears",
		AwayTeamAbbr:        "CHI",
		AwayTeamLogo:        "https://cdn.example.com/chi.png",
		AwayProjectedPoints: 17.5,
		HomeTeamName:        "Detroit Lions",
		HomeTeamAbbr:        "DET",
		HomeTeamLogo:        "https://cdn.example.com/det.png",
		HomeProjectedPoints: 24.5,
		WinningTeam:         "Detroit Lions",
	}

	got := matchupFromRow(rows[0])
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("expected: %+v, got: %+v", expected, got)
	}
}

func TestMatchupFromRow_unparseableProjectionsDefaultToZero(t *testing.T) {
	values := [][]any{
		{"UniqueID", "Week", "AwayTeamProjectedPoints", "HomeTeamProjectedPoints"},
		{"W1G1", "1", "n/a", ""},
	}

	rows := normalizeTable(values)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	m := matchupFromRow(rows[0])
	if m.AwayProjectedPoints != 0 {
		t.Errorf("away projection - expected: 0, got: %f", m.AwayProjectedPoints)
	}
	if m.HomeProjectedPoints != 0 {
		t.Errorf("home projection - expected: 0, got: %f", m.HomeProjectedPoints)
	}
}
