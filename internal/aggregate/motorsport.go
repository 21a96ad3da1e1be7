package aggregate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fortuna/courtside/internal/model"
)

// MotorsportScheduleResponse is the season race calendar split around now.
type MotorsportScheduleResponse struct {
	Upcoming    []model.RaceEvent `json:"upcoming"`
	Completed   []model.RaceEvent `json:"completed"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

// MotorsportStandingsResponse carries both championship tables.
type MotorsportStandingsResponse struct {
	Drivers      []model.MotorsportStanding `json:"drivers"`
	Constructors []model.MotorsportStanding `json:"constructors"`
	LastUpdated  time.Time                  `json:"lastUpdated"`
}

// ErrMotorsportDisabled signals that no motorsport provider was wired.
var ErrMotorsportDisabled = errors.New("motorsport provider not configured")

// MotorsportSchedule returns the race calendar split into upcoming and
// completed relative to now. Source order is preserved in both halves.
func (s *Service) MotorsportSchedule(ctx context.Context) (*MotorsportScheduleResponse, error) {
	if s.ergast == nil {
		return nil, ErrMotorsportDisabled
	}

	races, err := s.ergast.FetchSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("motorsport schedule: %w", err)
	}

	now := s.now()
	resp := &MotorsportScheduleResponse{
		Upcoming:    []model.RaceEvent{},
		Completed:   []model.RaceEvent{},
		LastUpdated: now,
	}
	for _, race := range races {
		if race.Date.After(now) {
			resp.Upcoming = append(resp.Upcoming, race)
		} else {
			resp.Completed = append(resp.Completed, race)
		}
	}
	return resp, nil
}

// MotorsportStandings fetches both championship tables. The driver table is
// load-bearing; a constructor failure degrades to an empty list.
func (s *Service) MotorsportStandings(ctx context.Context) (*MotorsportStandingsResponse, error) {
	if s.ergast == nil {
		return nil, ErrMotorsportDisabled
	}

	drivers, err := s.ergast.FetchDriverStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("motorsport standings: %w", err)
	}

	constructors, err := s.ergast.FetchConstructorStandings(ctx)
	if err != nil {
		constructors = []model.MotorsportStanding{}
	}

	return &MotorsportStandingsResponse{
		Drivers:      drivers,
		Constructors: constructors,
		LastUpdated:  s.now(),
	}, nil
}
