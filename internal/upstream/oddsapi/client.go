// Package oddsapi talks to the-odds-api.com. Odds are best-effort
// enrichment: the aggregator never fails a request because this provider is
// down. The provider shares no stable identifier with the scoreboard, so
// joins happen by team-name matching downstream.
package oddsapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fortuna/courtside/internal/upstream"
)

const (
	BaseURL = "https://api.the-odds-api.com/v4"

	SportNCAAWBasketball = "basketball_wncaab"
)

// GameOdds is one event's odds across bookmakers.
type GameOdds struct {
	ID         string      `json:"id"`
	HomeTeam   string      `json:"home_team"`
	AwayTeam   string      `json:"away_team"`
	Bookmakers []Bookmaker `json:"bookmakers"`
}

// Bookmaker carries one book's markets.
type Bookmaker struct {
	Key     string   `json:"key"`
	Markets []Market `json:"markets"`
}

// Market is one odds market ("h2h" for moneyline).
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is a single priced outcome. Price is in American odds.
type Outcome struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Moneyline returns the American-odds moneyline for the named team from the
// first bookmaker carrying an h2h market. ok is false when no price exists.
func (g *GameOdds) Moneyline(teamName string) (int, bool) {
	for _, book := range g.Bookmakers {
		for _, market := range book.Markets {
			if market.Key != "h2h" {
				continue
			}
			for _, outcome := range market.Outcomes {
				if outcome.Name == teamName {
					return outcome.Price, true
				}
			}
		}
	}
	return 0, false
}

// Client fetches odds from the-odds-api.
type Client struct {
	baseURL  string
	apiKey   string
	upstream *upstream.Client
}

// New creates an odds client. An empty apiKey produces a client whose
// fetches fail fast, which degrades cleanly at the aggregator.
func New(baseURL, apiKey string, uc *upstream.Client) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if uc == nil {
		uc = upstream.NewClient()
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, upstream: uc}
}

// FetchOdds fetches head-to-head odds for every upcoming event in a sport.
func (c *Client) FetchOdds(ctx context.Context, sportKey string) ([]GameOdds, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("oddsapi: no API key configured")
	}

	u := fmt.Sprintf("%s/sports/%s/odds?apiKey=%s&regions=us&markets=h2h&oddsFormat=american",
		c.baseURL, sportKey, url.QueryEscape(c.apiKey))

	var out []GameOdds
	if err := c.upstream.GetJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}
