// Package normalize maps provider payloads into the stable internal schema.
// Malformed records are dropped and logged individually; one bad entry never
// aborts a batch.
package normalize

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/upstream/espn"
)

// Events maps a scoreboard payload into normalized events. Records missing
// a home or away side are skipped with a warning.
func Events(raw *espn.ScoreboardResponse) []model.Event {
	if raw == nil {
		return nil
	}

	events := make([]model.Event, 0, len(raw.Events))
	for _, rawEvent := range raw.Events {
		event, err := normalizeEvent(rawEvent)
		if err != nil {
			log.Printf("[normalize] skipping event %s: %v", rawEvent.ID, err)
			continue
		}
		events = append(events, event)
	}
	return events
}

// Calendar extracts the tournament date calendar from the first league.
func Calendar(raw *espn.ScoreboardResponse) []string {
	if raw == nil || len(raw.Leagues) == 0 {
		return []string{}
	}
	if raw.Leagues[0].Calendar == nil {
		return []string{}
	}
	return raw.Leagues[0].Calendar
}

// TournamentName extracts the display name of the first league.
func TournamentName(raw *espn.ScoreboardResponse) string {
	if raw == nil || len(raw.Leagues) == 0 {
		return ""
	}
	return raw.Leagues[0].Name
}

func normalizeEvent(rawEvent espn.Event) (model.Event, error) {
	if len(rawEvent.Competitions) == 0 {
		return model.Event{}, fmt.Errorf("no competitions")
	}
	comp := rawEvent.Competitions[0]

	status := normalizeStatus(rawEvent.Status)

	var home, away *model.TeamSide
	for _, competitor := range comp.Competitors {
		side := normalizeSide(competitor, status.State)
		switch competitor.HomeAway {
		case "home":
			home = &side
		case "away":
			away = &side
		}
	}
	if home == nil || away == nil {
		return model.Event{}, fmt.Errorf("missing home or away competitor")
	}

	event := model.Event{
		ID:        rawEvent.ID,
		Name:      rawEvent.Name,
		ShortName: rawEvent.ShortName,
		Status:    status,
		Teams:     model.Matchup{Home: *home, Away: *away},
	}

	if date, err := parseDate(rawEvent.Date); err == nil {
		event.Date = date
	} else {
		log.Printf("[normalize] event %s: unparseable date %q", rawEvent.ID, rawEvent.Date)
	}

	if comp.Venue != nil && comp.Venue.FullName != "" {
		venue := &model.Venue{Name: comp.Venue.FullName}
		if comp.Venue.Address != nil {
			venue.City = comp.Venue.Address.City
			venue.State = comp.Venue.Address.State
		}
		event.Venue = venue
	}

	event.Broadcasts = []string{}
	for _, broadcast := range comp.Broadcasts {
		event.Broadcasts = append(event.Broadcasts, broadcast.Names...)
	}

	round := RoundInfo(comp.Notes)
	event.Round = round.Round
	event.Region = round.Region
	event.BracketType = round.BracketType

	return event, nil
}

func normalizeSide(competitor espn.Competitor, state model.GameState) model.TeamSide {
	side := model.TeamSide{
		ID:           competitor.Team.ID,
		Name:         firstNonEmpty(competitor.Team.DisplayName, competitor.Team.Name),
		Abbreviation: competitor.Team.Abbreviation,
		Logo:         competitor.Team.Logo,
		Winner:       competitor.Winner,
	}

	// Score is meaningless before tip-off even when the provider sends "0".
	if state != model.StatePre {
		side.Score = competitor.Score
	}

	if competitor.CuratedRank != nil {
		if seed := competitor.CuratedRank.Current; seed >= 1 && seed <= 16 {
			side.Seed = seed
		}
	}

	for _, record := range competitor.Records {
		side.Records = append(side.Records, model.Record{
			Type:    record.Type,
			Summary: record.Summary,
		})
	}

	if state == model.StatePost {
		side.Stats = normalizeStats(competitor.Statistics)
	}

	return side
}

// normalizeStats builds box score totals from labeled stat values. Returns
// nil when the provider sent no statistics.
func normalizeStats(stats []espn.RawStat) *model.TeamStats {
	if len(stats) == 0 {
		return nil
	}

	get := func(names ...string) int {
		for _, stat := range stats {
			for _, name := range names {
				if stat.Name == name || stat.Abbreviation == name {
					v, _ := strconv.Atoi(stat.DisplayValue)
					return v
				}
			}
		}
		return 0
	}

	return &model.TeamStats{
		FieldGoals:         get("fieldGoalsMade", "FGM"),
		FieldGoalAttempts:  get("fieldGoalsAttempted", "FGA"),
		ThreePointers:      get("threePointFieldGoalsMade", "3PM"),
		ThreePointAttempts: get("threePointFieldGoalsAttempted", "3PA"),
		FreeThrows:         get("freeThrowsMade", "FTM"),
		FreeThrowAttempts:  get("freeThrowsAttempted", "FTA"),
		Rebounds:           get("rebounds", "REB"),
	}
}

func normalizeStatus(raw espn.Status) model.Status {
	status := model.Status{
		Period:       raw.Period,
		DisplayClock: raw.DisplayClock,
		Description:  firstNonEmpty(raw.Type.ShortDetail, raw.Type.Description),
	}

	switch raw.Type.State {
	case "in":
		status.State = model.StateIn
	case "post":
		status.State = model.StatePost
	default:
		if raw.Type.Completed {
			status.State = model.StatePost
		} else {
			status.State = model.StatePre
		}
	}

	return status
}

// parseDate handles RFC3339 plus the provider's shortened form without
// seconds ("2025-03-21T01:00Z").
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04Z", value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
