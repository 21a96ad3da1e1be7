// Package aggregate orchestrates the upstream clients, normalizer, and
// classifier into one consolidated response per logical resource. Services
// hold no per-request state; every call stands alone.
package aggregate

import (
	"time"

	"github.com/fortuna/courtside/internal/upstream/ergast"
	"github.com/fortuna/courtside/internal/upstream/espn"
	"github.com/fortuna/courtside/internal/upstream/oddsapi"
	"github.com/fortuna/courtside/internal/upstream/social"
)

// Config selects the upstream resources the service aggregates.
type Config struct {
	TournamentPath string // ESPN sport path for the tournament (ncaaw)
	LeaguePath     string // ESPN sport path for the secondary league (pwhl)
	OddsSportKey   string // the-odds-api sport key for tournament odds
	SocialQuery    string // search query for social enrichment
}

// DefaultConfig returns the production resource selection.
func DefaultConfig() Config {
	return Config{
		TournamentPath: espn.BasketballNCAAW,
		LeaguePath:     espn.HockeyPWHL,
		OddsSportKey:   oddsapi.SportNCAAWBasketball,
		SocialQuery:    "#MarchMadness",
	}
}

// Service aggregates upstream data into consolidated responses. The odds,
// social, ergast, and news-fallback collaborators are optional; a nil
// collaborator simply disables that enrichment.
type Service struct {
	espn         *espn.Client
	odds         *oddsapi.Client
	social       *social.Client
	ergast       *ergast.Client
	newsFallback NewsFallback
	config       Config
	now          func() time.Time
}

// NewService wires an aggregation service. espnClient is required.
func NewService(espnClient *espn.Client, config Config) *Service {
	if espnClient == nil {
		espnClient = espn.NewClient()
	}
	return &Service{
		espn:   espnClient,
		config: config,
		now:    time.Now,
	}
}

// WithOdds attaches the best-effort odds provider.
func (s *Service) WithOdds(client *oddsapi.Client) *Service {
	s.odds = client
	return s
}

// WithSocial attaches the best-effort social provider.
func (s *Service) WithSocial(client *social.Client) *Service {
	s.social = client
	return s
}

// WithErgast attaches the motorsport provider.
func (s *Service) WithErgast(client *ergast.Client) *Service {
	s.ergast = client
	return s
}

// WithNewsFallback attaches the scrape-based news fallback.
func (s *Service) WithNewsFallback(fallback NewsFallback) *Service {
	s.newsFallback = fallback
	return s
}

// WithClock overrides the wall clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
