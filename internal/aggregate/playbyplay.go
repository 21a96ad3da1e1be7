package aggregate

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/normalize"
	"github.com/fortuna/courtside/internal/upstream"
)

// recentPlayWindow bounds the recent-plays payload. Older plays are dropped
// deliberately; responsiveness over completeness.
const recentPlayWindow = 10

// PlayByPlay is the live play feed for one game. RecentPlays holds at most
// the last recentPlayWindow plays, oldest first; Scoring is the full
// scoring-play subset, unsliced.
type PlayByPlay struct {
	GameID          string       `json:"gameId"`
	Clock           string       `json:"clock"`
	Period          int          `json:"period"`
	PossessionArrow string       `json:"possessionArrow"`
	RecentPlays     []model.Play `json:"recentPlays"`
	Scoring         []model.Play `json:"scoring"`
}

// PlayByPlay fetches and shapes the play log for a game. A summary with no
// play collection at all returns ErrNoData so the caller can render a calm
// "not started" state instead of an error.
func (s *Service) PlayByPlay(ctx context.Context, gameID string) (*PlayByPlay, error) {
	summary, err := s.espn.FetchSummary(ctx, s.config.TournamentPath, gameID)
	if err != nil {
		return nil, fmt.Errorf("play-by-play for game %s: %w", gameID, err)
	}

	plays := normalize.Plays(summary)
	if len(plays) == 0 {
		return nil, fmt.Errorf("play-by-play for game %s: %w", gameID, upstream.ErrNoData)
	}

	recent := plays
	if len(recent) > recentPlayWindow {
		recent = recent[len(recent)-recentPlayWindow:]
	}

	latest := plays[len(plays)-1]

	return &PlayByPlay{
		GameID:          gameID,
		Clock:           latest.Clock,
		Period:          latest.Period,
		PossessionArrow: normalize.PossessionArrow(summary),
		RecentPlays:     recent,
		Scoring:         normalize.ScoringPlays(plays),
	}, nil
}
