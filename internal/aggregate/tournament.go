package aggregate

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/fortuna/courtside/internal/classify"
	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/normalize"
	"github.com/fortuna/courtside/internal/upstream"
	"github.com/fortuna/courtside/internal/upstream/oddsapi"
)

// RoundGroup is one named bracket round with its games, date ascending.
type RoundGroup struct {
	Name  string        `json:"name"`
	Games []model.Event `json:"games"`
}

// TournamentResponse is the consolidated tournament view.
type TournamentResponse struct {
	Tournament  string           `json:"tournament"`
	Rounds      []RoundGroup     `json:"rounds"`
	Games       classify.Buckets `json:"games"`
	Calendar    []string         `json:"calendar"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// Tournament fetches the scoreboard and odds concurrently and composes the
// bracket view. The scoreboard is load-bearing; an odds failure only means
// every side ships without odds.
func (s *Service) Tournament(ctx context.Context) (*TournamentResponse, error) {
	var (
		wg       sync.WaitGroup
		odds     []oddsapi.GameOdds
		oddsErr  error
	)

	if s.odds != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			odds, oddsErr = s.odds.FetchOdds(ctx, s.config.OddsSportKey)
		}()
	}

	scoreboard, err := s.espn.FetchScoreboard(ctx, s.config.TournamentPath)

	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("tournament scoreboard: %w", err)
	}
	if oddsErr != nil {
		log.Printf("[aggregate] odds fetch failed, continuing without odds: %v", oddsErr)
		odds = nil
	}

	events := normalize.Events(scoreboard)
	if len(odds) > 0 {
		AttachOdds(events, odds)
	}

	return &TournamentResponse{
		Tournament:  normalize.TournamentName(scoreboard),
		Rounds:      GroupRounds(events),
		Games:       classify.Classify(events, s.now()),
		Calendar:    normalize.Calendar(scoreboard),
		LastUpdated: s.now(),
	}, nil
}

// Game returns a single normalized event by ID from the current
// scoreboard. An unknown ID returns ErrNoData.
func (s *Service) Game(ctx context.Context, gameID string) (*model.Event, error) {
	scoreboard, err := s.espn.FetchScoreboard(ctx, s.config.TournamentPath)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", gameID, err)
	}

	for _, event := range normalize.Events(scoreboard) {
		if event.ID == gameID {
			return &event, nil
		}
	}
	return nil, fmt.Errorf("game %s: %w", gameID, upstream.ErrNoData)
}

// GroupRounds buckets events by resolved round name in bracket order,
// emitting only non-empty rounds, each sorted by date ascending. Events
// with no round claim are left out.
func GroupRounds(events []model.Event) []RoundGroup {
	byRound := map[string][]model.Event{}
	for _, event := range events {
		if event.Round == "" {
			continue
		}
		byRound[event.Round] = append(byRound[event.Round], event)
	}

	groups := make([]RoundGroup, 0, len(byRound))
	for _, name := range normalize.RoundOrder {
		games, ok := byRound[name]
		if !ok {
			continue
		}
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Date.Before(games[j].Date)
		})
		groups = append(groups, RoundGroup{Name: name, Games: games})
		delete(byRound, name)
	}

	// Round names outside the canonical order (shouldn't happen, but the
	// provider owns the labels) still get emitted, alphabetically.
	if len(byRound) > 0 {
		leftover := make([]string, 0, len(byRound))
		for name := range byRound {
			leftover = append(leftover, name)
		}
		sort.Strings(leftover)
		for _, name := range leftover {
			games := byRound[name]
			sort.SliceStable(games, func(i, j int) bool {
				return games[i].Date.Before(games[j].Date)
			})
			groups = append(groups, RoundGroup{Name: name, Games: games})
		}
	}

	return groups
}
