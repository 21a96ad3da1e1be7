// Package ergast fetches Formula 1 schedule and standings data from the
// Ergast developer API.
package ergast

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream"
)

const BaseURL = "https://ergast.com/api/f1"

type scheduleResponse struct {
	MRData struct {
		RaceTable struct {
			Races []race `json:"Races"`
		} `json:"RaceTable"`
	} `json:"MRData"`
}

type race struct {
	RaceName string `json:"raceName"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Circuit  struct {
		CircuitName string `json:"circuitName"`
	} `json:"Circuit"`
}

type standingsResponse struct {
	MRData struct {
		StandingsTable struct {
			StandingsLists []standingsList `json:"StandingsLists"`
		} `json:"StandingsTable"`
	} `json:"MRData"`
}

type standingsList struct {
	DriverStandings []struct {
		Position string `json:"position"`
		Points   string `json:"points"`
		Driver   struct {
			GivenName  string `json:"givenName"`
			FamilyName string `json:"familyName"`
		} `json:"Driver"`
	} `json:"DriverStandings"`
	ConstructorStandings []struct {
		Position    string `json:"position"`
		Points      string `json:"points"`
		Constructor struct {
			Name string `json:"name"`
		} `json:"Constructor"`
	} `json:"ConstructorStandings"`
}

// Client fetches F1 data for one season.
type Client struct {
	baseURL  string
	season   string
	upstream *upstream.Client
}

// New creates an Ergast client for the given season ("2025").
func New(baseURL, season string, uc *upstream.Client) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if season == "" {
		season = strconv.Itoa(time.Now().Year())
	}
	if uc == nil {
		uc = upstream.NewClient()
	}
	return &Client{baseURL: baseURL, season: season, upstream: uc}
}

// FetchSchedule returns the season race calendar. A season with no races
// published yet returns ErrNoData.
func (c *Client) FetchSchedule(ctx context.Context) ([]model.RaceEvent, error) {
	var raw scheduleResponse
	url := fmt.Sprintf("%s/%s.json", c.baseURL, c.season)
	if err := c.upstream.GetJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	races := raw.MRData.RaceTable.Races
	if len(races) == 0 {
		return nil, upstream.ErrNoData
	}

	events := make([]model.RaceEvent, 0, len(races))
	for _, r := range races {
		ev := model.RaceEvent{Name: r.RaceName, Circuit: r.Circuit.CircuitName}
		if ts, err := time.Parse(time.RFC3339, r.Date+"T"+r.Time); err == nil {
			ev.Date = ts
		} else if ts, err := time.Parse("2006-01-02", r.Date); err == nil {
			ev.Date = ts
		}
		events = append(events, ev)
	}
	return events, nil
}

// FetchDriverStandings returns the championship table for drivers.
func (c *Client) FetchDriverStandings(ctx context.Context) ([]model.MotorsportStanding, error) {
	var raw standingsResponse
	url := fmt.Sprintf("%s/%s/driverStandings.json", c.baseURL, c.season)
	if err := c.upstream.GetJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	lists := raw.MRData.StandingsTable.StandingsLists
	if len(lists) == 0 || len(lists[0].DriverStandings) == 0 {
		return nil, upstream.ErrNoData
	}

	rows := make([]model.MotorsportStanding, 0, len(lists[0].DriverStandings))
	for _, s := range lists[0].DriverStandings {
		pos, _ := strconv.Atoi(s.Position)
		pts, _ := strconv.ParseFloat(s.Points, 64)
		rows = append(rows, model.MotorsportStanding{
			Position: pos,
			Name:     s.Driver.GivenName + " " + s.Driver.FamilyName,
			Points:   pts,
		})
	}
	return rows, nil
}

// FetchConstructorStandings returns the championship table for constructors.
func (c *Client) FetchConstructorStandings(ctx context.Context) ([]model.MotorsportStanding, error) {
	var raw standingsResponse
	url := fmt.Sprintf("%s/%s/constructorStandings.json", c.baseURL, c.season)
	if err := c.upstream.GetJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	lists := raw.MRData.StandingsTable.StandingsLists
	if len(lists) == 0 || len(lists[0].ConstructorStandings) == 0 {
		return nil, upstream.ErrNoData
	}

	rows := make([]model.MotorsportStanding, 0, len(lists[0].ConstructorStandings))
	for _, s := range lists[0].ConstructorStandings {
		pos, _ := strconv.Atoi(s.Position)
		pts, _ := strconv.ParseFloat(s.Points, 64)
		rows = append(rows, model.MotorsportStanding{
			Position: pos,
			Name:     s.Constructor.Name,
			Points:   pts,
		})
	}
	return rows, nil
}
