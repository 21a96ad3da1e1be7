package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/normalize"
	"github.com/fortuna/courtside/internal/upstream"
)

// RankingsResponse is the primary-poll top 25.
type RankingsResponse struct {
	Poll        string               `json:"poll"`
	Entries     []model.RankingEntry `json:"entries"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

// Rankings fetches and normalizes the primary poll. An upstream payload
// with no ranking lists returns ErrNoData.
func (s *Service) Rankings(ctx context.Context) (*RankingsResponse, error) {
	raw, err := s.espn.FetchRankings(ctx, s.config.TournamentPath)
	if err != nil {
		return nil, fmt.Errorf("rankings: %w", err)
	}
	if raw == nil || len(raw.Rankings) == 0 {
		return nil, fmt.Errorf("rankings: %w", upstream.ErrNoData)
	}

	return &RankingsResponse{
		Poll:        raw.Rankings[0].Name,
		Entries:     normalize.Rankings(raw),
		LastUpdated: s.now(),
	}, nil
}
