package model

import (
	"fmt"
	"time"
)

// GameState is the lifecycle phase of an event as reported upstream.
// Transitions are monotonic within a polling session: pre -> in -> post.
type GameState string

const (
	StatePre  GameState = "pre"
	StateIn   GameState = "in"
	StatePost GameState = "post"
)

// rank orders states for regression checks. Unknown states sort first.
func (s GameState) rank() int {
	switch s {
	case StatePre:
		return 1
	case StateIn:
		return 2
	case StatePost:
		return 3
	default:
		return 0
	}
}

// Before reports whether s is an earlier lifecycle phase than other.
func (s GameState) Before(other GameState) bool {
	return s.rank() < other.rank()
}

// Status describes where an event currently stands.
type Status struct {
	State        GameState `json:"state"`
	Period       int       `json:"period"`
	DisplayClock string    `json:"displayClock,omitempty"`
	Description  string    `json:"description,omitempty"`
}

// Format renders the status the way game cards display it:
// "Scheduled" pre-game, "2Q 05:12" or "OT1 02:30" in game, "Final (OT)" after.
func (s Status) Format() string {
	switch s.State {
	case StatePre:
		if s.Description != "" {
			return s.Description
		}
		return "Scheduled"
	case StateIn:
		if s.Period > 4 {
			return fmt.Sprintf("OT%d %s", s.Period-4, s.DisplayClock)
		}
		return fmt.Sprintf("%dQ %s", s.Period, s.DisplayClock)
	default:
		if s.Period > 4 {
			return "Final (OT)"
		}
		return "Final"
	}
}

// TeamOdds carries best-effort betting enrichment for one side.
type TeamOdds struct {
	Moneyline int `json:"moneyline"`
}

// Record is a win/loss summary line ("total": "28-4").
type Record struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

// TeamStats holds post-game box score totals. Nil until the game is final.
type TeamStats struct {
	FieldGoals         int `json:"fieldGoals"`
	FieldGoalAttempts  int `json:"fieldGoalAttempts"`
	ThreePointers      int `json:"threePointers"`
	ThreePointAttempts int `json:"threePointAttempts"`
	FreeThrows         int `json:"freeThrows"`
	FreeThrowAttempts  int `json:"freeThrowAttempts"`
	Rebounds           int `json:"rebounds"`
}

// TeamSide is one competitor in an event.
type TeamSide struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name"`
	Abbreviation string     `json:"abbreviation,omitempty"`
	Logo         string     `json:"logo,omitempty"`
	Score        string     `json:"score,omitempty"`
	Seed         int        `json:"seed,omitempty"`
	Winner       bool       `json:"winner"`
	Records      []Record   `json:"records,omitempty"`
	Stats        *TeamStats `json:"stats,omitempty"`
	Odds         *TeamOdds  `json:"odds,omitempty"`
}

// Matchup pairs the two sides of an event. Exactly one home and one away.
type Matchup struct {
	Home TeamSide `json:"home"`
	Away TeamSide `json:"away"`
}

// Venue is where an event is played.
type Venue struct {
	Name  string `json:"name"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// Event is one scheduled, live, or completed contest in the normalized shape
// every provider payload is mapped into.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	ShortName   string    `json:"shortName,omitempty"`
	Date        time.Time `json:"date"`
	Status      Status    `json:"status"`
	Teams       Matchup   `json:"teams"`
	Venue       *Venue    `json:"venue,omitempty"`
	Broadcasts  []string  `json:"broadcasts"`
	Round       string    `json:"round,omitempty"`
	Region      string    `json:"region,omitempty"`
	BracketType string    `json:"bracketType,omitempty"`
}

// Play is a single play-by-play entry. ScoreValue of zero means a
// non-scoring play, not missing data.
type Play struct {
	ID         string `json:"id"`
	Period     int    `json:"period"`
	Clock      string `json:"clock"`
	Text       string `json:"text"`
	ScoreValue int    `json:"scoreValue,omitempty"`
	Team       string `json:"team,omitempty"`
}
