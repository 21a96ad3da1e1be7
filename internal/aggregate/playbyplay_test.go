package aggregate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/courtside/internal/upstream"
	"github.com/fortuna/courtside/internal/upstream/espn"
)

func summaryService(t *testing.T, summary espn.SummaryResponse) *Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(summary)
	}))
	t.Cleanup(server.Close)

	return NewService(espn.New(server.URL, fastClient()), DefaultConfig())
}

func TestPlayByPlayRecentWindow(t *testing.T) {
	var plays []espn.RawPlay
	for i := 1; i <= 25; i++ {
		play := espn.RawPlay{
			ID:     fmt.Sprintf("p%d", i),
			Text:   fmt.Sprintf("play %d", i),
			Period: espn.PlayPeriod{Number: 3},
			Clock:  espn.PlayClock{DisplayValue: "04:55"},
		}
		if i%5 == 0 {
			play.ScoreValue = 2
		}
		plays = append(plays, play)
	}

	service := summaryService(t, espn.SummaryResponse{Plays: plays})

	resp, err := service.PlayByPlay(context.Background(), "g1")
	require.NoError(t, err)

	// Recent view keeps the last 10 only, oldest first.
	require.Len(t, resp.RecentPlays, 10)
	assert.Equal(t, "p16", resp.RecentPlays[0].ID)
	assert.Equal(t, "p25", resp.RecentPlays[9].ID)

	// Scoring subset stays unsliced across the whole log.
	assert.Len(t, resp.Scoring, 5)

	assert.Equal(t, 3, resp.Period)
	assert.Equal(t, "04:55", resp.Clock)
	assert.Equal(t, "g1", resp.GameID)
}

func TestPlayByPlayCarriesPossessionArrow(t *testing.T) {
	service := summaryService(t, espn.SummaryResponse{
		Plays: []espn.RawPlay{{ID: "p1"}},
		Header: &espn.Header{
			Competitions: []espn.Competition{
				{
					Competitors: []espn.Competitor{
						{Team: espn.Team{ID: "1", Abbreviation: "SC"}},
						{Team: espn.Team{ID: "2", Abbreviation: "IOWA"}},
					},
					Situation: &espn.Situation{Possession: "2"},
				},
			},
		},
	})

	resp, err := service.PlayByPlay(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "IOWA", resp.PossessionArrow)
}

func TestPlayByPlayShortLogServedWhole(t *testing.T) {
	service := summaryService(t, espn.SummaryResponse{
		Plays: []espn.RawPlay{{ID: "p1"}, {ID: "p2"}},
	})

	resp, err := service.PlayByPlay(context.Background(), "g1")
	require.NoError(t, err)
	assert.Len(t, resp.RecentPlays, 2)
}

func TestPlayByPlayNotStartedIsNoData(t *testing.T) {
	service := summaryService(t, espn.SummaryResponse{})

	_, err := service.PlayByPlay(context.Background(), "g1")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrNoData)
}
