package sheets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/The-Yester/Pickem/model"
)

// Row is one normalized data row, keyed by trimmed header name. Cell
// values are bool, float64, or string depending on what the raw cell
// parsed as.
type Row map[string]any

// normalizeTable converts the raw cell rectangle into typed rows. Row 0
// is the header; fewer than 2 rows yields no data rather than an error.
// Every header and cell is trimmed, "TRUE"/"FALSE" become booleans
// (case-insensitive), fully-numeric cells become numbers, and anything
// else stays a trimmed string. Missing cells become the empty string.
// Row order is preserved and each data row maps to exactly one Row.
func normalizeTable(values [][]any) []Row {
	if len(values) < 2 {
		return nil
	}

	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = strings.TrimSpace(cellString(h))
	}

	rows := make([]Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		entry := make(Row, len(headers))
		for i, header := range headers {
			var cell string
			if i < len(raw) {
				cell = strings.TrimSpace(cellString(raw[i]))
			}
			entry[header] = convertCell(cell)
		}
		rows = append(rows, entry)
	}
	return rows
}

func convertCell(cell string) any {
	switch strings.ToUpper(cell) {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	if cell != "" {
		if n, err := strconv.ParseFloat(cell, 64); err == nil {
			return n
		}
	}
	return cell
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// The column headers of the matchup sheet (range A:M).
const (
	colUniqueID     = "UniqueID"
	colWeek         = "Week"
	colGameDate     = "GameDate"
	colGameTimeET   = "GameTimeET"
	colAwayTeamName = "AwayTeamName"
	colAwayTeamAB   = "AwayTeamAB"
	colAwayTeamLogo = "AwayTeamLogo"
	colAwayTeamProj = "AwayTeamProjectedPoints"
	colHomeTeamName = "HomeTeamName"
	colHomeTeamAB   = "HomeTeamAB"
	colHomeTeamLogo = "HomeTeamLogo"
	colHomeTeamProj = "HomeTeamProjectedPoints"
	colWinningTeam  = "WinningTeam"
)

func matchupFromRow(r Row) model.Matchup {
	return model.Matchup{
		UniqueID:   stringValue(r[colUniqueID]),
		Week:       intValue(r[colWeek]),
		GameDate:   stringValue(r[colGameDate]),
		GameTimeET: stringValue(r[colGameTimeET]),

		AwayTeamName:        stringValue(r[colAwayTeamName]),
		AwayTeamAbbr:        stringValue(r[colAwayTeamAB]),
		AwayTeamLogo:        stringValue(r[colAwayTeamLogo]),
		AwayProjectedPoints: floatValue(r[colAwayTeamProj]),

		HomeTeamName:        stringValue(r[colHomeTeamName]),
		HomeTeamAbbr:        stringValue(r[colHomeTeamAB]),
		HomeTeamLogo:        stringValue(r[colHomeTeamLogo]),
		HomeProjectedPoints: floatValue(r[colHomeTeamProj]),

		WinningTeam: stringValue(r[colWinningTeam]),
	}
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func intValue(v any) int {
	if n, ok := v.(float64); ok {
		return int(n)
	}
	return 0
}

func floatValue(v any) float64 {
	if n, ok := v.(float64); ok {
		return n
	}
	return 0
}
