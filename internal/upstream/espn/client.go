package espn

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/upstream"
)

const (
	BaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	// Sport paths served by the site API.
	BasketballNCAAW = "basketball/womens-college-basketball"
	HockeyPWHL      = "hockey/womens-professional-hockey-league"
)

// Client wraps the retrying upstream client with the ESPN site API routes.
type Client struct {
	baseURL  string
	upstream *upstream.Client
}

// New creates an ESPN client with a custom base URL.
func New(baseURL string, uc *upstream.Client) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if uc == nil {
		uc = upstream.NewClient()
	}
	return &Client{baseURL: baseURL, upstream: uc}
}

// NewClient creates an ESPN client with default settings.
func NewClient() *Client {
	return New(BaseURL, nil)
}

// FetchScoreboard fetches the current scoreboard for a sport path.
func (c *Client) FetchScoreboard(ctx context.Context, sportPath string) (*ScoreboardResponse, error) {
	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, sportPath)
	var out ScoreboardResponse
	if err := c.upstream.GetJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchRankings fetches the poll rankings for a sport path.
func (c *Client) FetchRankings(ctx context.Context, sportPath string) (*RankingsResponse, error) {
	url := fmt.Sprintf("%s/%s/rankings", c.baseURL, sportPath)
	var out RankingsResponse
	if err := c.upstream.GetJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchSummary fetches the detailed game summary, including the play log.
func (c *Client) FetchSummary(ctx context.Context, sportPath, gameID string) (*SummaryResponse, error) {
	url := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, sportPath, gameID)
	var out SummaryResponse
	if err := c.upstream.GetJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchStandings fetches the league table for a sport path.
func (c *Client) FetchStandings(ctx context.Context, sportPath string) (*StandingsResponse, error) {
	url := fmt.Sprintf("%s/%s/standings", c.baseURL, sportPath)
	var out StandingsResponse
	if err := c.upstream.GetJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchNews fetches the news feed for a sport path.
func (c *Client) FetchNews(ctx context.Context, sportPath string) (*NewsResponse, error) {
	url := fmt.Sprintf("%s/%s/news", c.baseURL, sportPath)
	var out NewsResponse
	if err := c.upstream.GetJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
