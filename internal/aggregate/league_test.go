package aggregate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream/espn"
)

type stubFallback struct {
	articles []model.NewsArticle
	err      error
	calls    int32
}

func (s *stubFallback) FetchNews(context.Context) ([]model.NewsArticle, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.articles, s.err
}

func newsService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewService(espn.New(server.URL, fastClient()), DefaultConfig())
}

func TestLeagueNewsPrefersFeed(t *testing.T) {
	feed := espn.NewsResponse{
		Articles: []espn.Article{
			{Headline: "Trade deadline recap", Links: espn.ArticleLinks{Web: espn.WebLink{Href: "https://example.com/recap"}}},
		},
	}
	fallback := &stubFallback{articles: []model.NewsArticle{{Title: "scraped"}}}

	service := newsService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(feed)
	}).WithNewsFallback(fallback)

	resp, err := service.LeagueNews(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "api", resp.Source)
	require.Len(t, resp.Articles, 1)
	assert.Equal(t, "Trade deadline recap", resp.Articles[0].Title)
	assert.Zero(t, atomic.LoadInt32(&fallback.calls))
}

func TestLeagueNewsFallsBackWhenFeedFails(t *testing.T) {
	fallback := &stubFallback{articles: []model.NewsArticle{{Title: "scraped headline"}}}

	service := newsService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}).WithNewsFallback(fallback)

	resp, err := service.LeagueNews(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "scrape", resp.Source)
	require.Len(t, resp.Articles, 1)
	assert.Equal(t, "scraped headline", resp.Articles[0].Title)
}

func TestLeagueNewsFallsBackWhenFeedEmpty(t *testing.T) {
	fallback := &stubFallback{articles: []model.NewsArticle{{Title: "scraped headline"}}}

	service := newsService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(espn.NewsResponse{})
	}).WithNewsFallback(fallback)

	resp, err := service.LeagueNews(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "scrape", resp.Source)
}

func TestLeagueNewsBothSourcesFailing(t *testing.T) {
	fallback := &stubFallback{err: errors.New("browser crashed")}

	service := newsService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}).WithNewsFallback(fallback)

	_, err := service.LeagueNews(context.Background())
	require.Error(t, err)
}

func TestLeagueNewsNoFallbackEmptyFeedIsNotAnError(t *testing.T) {
	service := newsService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(espn.NewsResponse{})
	})

	resp, err := service.LeagueNews(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "api", resp.Source)
	assert.Empty(t, resp.Articles)
}

func TestLeagueStandings(t *testing.T) {
	standings := espn.StandingsResponse{
		Standings: &espn.StandingsBlock{
			Entries: []espn.StandingsEntry{
				{
					Team: espn.Team{DisplayName: "Toronto Sceptres"},
					Stats: []espn.StandingStat{
						{Name: "gamesPlayed", Value: 30},
						{Name: "wins", Value: 20},
						{Name: "losses", Value: 8},
						{Name: "otLosses", Value: 2},
						{Name: "points", Value: 64},
					},
				},
			},
		},
	}

	service := newsService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(standings)
	})

	resp, err := service.LeagueStandings(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Standings, 1)
	row := resp.Standings[0]
	assert.Equal(t, 1, row.Rank)
	assert.Equal(t, "Toronto Sceptres", row.Name)
	assert.Equal(t, 30, row.GamesPlayed)
	assert.Equal(t, 64, row.Points)
}
