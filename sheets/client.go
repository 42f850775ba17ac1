package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/The-Yester/Pickem/model"
)

const sheetsURL = "https://sheets.googleapis.com"

// ErrUnavailable is returned when the matchup sheet could not be
// retrieved or did not come back as a table. Callers use it to tell
// "source down" apart from "no matchups yet".
var ErrUnavailable = errors.New("matchup sheet unavailable")

// Config identifies the spreadsheet holding the season's matchups.
// Everything is explicit; the package never reads the environment.
type Config struct {
	APIKey        string
	SpreadsheetID string
	// Range selects the tab and columns, e.g. "2025Matchups!A:M".
	Range string
}

type Client interface {
	LoadMatchups(ctx context.Context) ([]model.Matchup, error)
}

type client struct {
	url        string
	config     Config
	httpClient *http.Client
}

func New(config Config) (Client, error) {
	if config.APIKey == "" || config.SpreadsheetID == "" || config.Range == "" {
		return nil, errors.New("sheets config requires APIKey, SpreadsheetID, and Range")
	}
	c := &client{
		url:    sheetsURL,
		config: config,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string, config Config) Client {
	return &client{
		url:        url,
		config:     config,
		httpClient: http.DefaultClient,
	}
}

// valueRange mirrors the Sheets API values response: a rectangle of
// cells where row 0 is the header row.
type valueRange struct {
	Range  string  `json:"range"`
	Values [][]any `json:"values"`
}

func (c *client) LoadMatchups(ctx context.Context) ([]model.Matchup, error) {
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.url, c.config.SpreadsheetID, url.PathEscape(c.config.Range), url.QueryEscape(c.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrUnavailable, resp.StatusCode)
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("%w: error parsing response: %v", ErrUnavailable, err)
	}

	rows := normalizeTable(vr.Values)
	matchups := make([]model.Matchup, 0, len(rows))
	for _, r := range rows {
		m := matchupFromRow(r)
		// A matchup without an ID cannot be picked or graded.
		if m.UniqueID == "" {
			continue
		}
		matchups = append(matchups, m)
	}
	return matchups, nil
}
