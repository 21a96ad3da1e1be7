package aggregate

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fortuna/courtside/internal/classify"
	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/normalize"
)

// NewsFallback supplies articles when the league's API feed comes back
// empty or fails. The scrape package provides the production
// implementation.
type NewsFallback interface {
	FetchNews(ctx context.Context) ([]model.NewsArticle, error)
}

// LeagueGamesResponse is the secondary league's classified scoreboard.
type LeagueGamesResponse struct {
	Games       classify.Buckets `json:"games"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// LeagueStandingsResponse is the secondary league's table.
type LeagueStandingsResponse struct {
	Standings   []model.StandingRow `json:"standings"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

// LeagueNewsResponse is the secondary league's article feed.
type LeagueNewsResponse struct {
	Articles    []model.NewsArticle `json:"articles"`
	Source      string              `json:"source"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

// LeagueGames fetches the league scoreboard and buckets it by state.
func (s *Service) LeagueGames(ctx context.Context) (*LeagueGamesResponse, error) {
	scoreboard, err := s.espn.FetchScoreboard(ctx, s.config.LeaguePath)
	if err != nil {
		return nil, fmt.Errorf("league games: %w", err)
	}

	events := normalize.Events(scoreboard)
	return &LeagueGamesResponse{
		Games:       classify.Classify(events, s.now()),
		LastUpdated: s.now(),
	}, nil
}

// LeagueStandings fetches and flattens the league table.
func (s *Service) LeagueStandings(ctx context.Context) (*LeagueStandingsResponse, error) {
	raw, err := s.espn.FetchStandings(ctx, s.config.LeaguePath)
	if err != nil {
		return nil, fmt.Errorf("league standings: %w", err)
	}

	return &LeagueStandingsResponse{
		Standings:   normalize.Standings(raw),
		LastUpdated: s.now(),
	}, nil
}

// LeagueNews fetches the league article feed, falling back to the scrape
// source when the API feed errors or yields nothing. Both sources failing
// is an error; an empty fallback result is not.
func (s *Service) LeagueNews(ctx context.Context) (*LeagueNewsResponse, error) {
	raw, apiErr := s.espn.FetchNews(ctx, s.config.LeaguePath)

	var articles []model.NewsArticle
	if apiErr == nil {
		articles = normalize.News(raw)
	}

	if len(articles) > 0 {
		return &LeagueNewsResponse{
			Articles:    articles,
			Source:      "api",
			LastUpdated: s.now(),
		}, nil
	}

	if s.newsFallback == nil {
		if apiErr != nil {
			return nil, fmt.Errorf("league news: %w", apiErr)
		}
		return &LeagueNewsResponse{
			Articles:    []model.NewsArticle{},
			Source:      "api",
			LastUpdated: s.now(),
		}, nil
	}

	if apiErr != nil {
		log.Printf("[aggregate] news feed failed, using scrape fallback: %v", apiErr)
	} else {
		log.Printf("[aggregate] news feed empty, using scrape fallback")
	}

	scraped, scrapeErr := s.newsFallback.FetchNews(ctx)
	if scrapeErr != nil {
		if apiErr != nil {
			return nil, fmt.Errorf("league news: api: %v; fallback: %w", apiErr, scrapeErr)
		}
		return nil, fmt.Errorf("league news fallback: %w", scrapeErr)
	}

	return &LeagueNewsResponse{
		Articles:    scraped,
		Source:      "scrape",
		LastUpdated: s.now(),
	}, nil
}
