package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/fortuna/courtside/internal/aggregate"
	"github.com/fortuna/courtside/internal/model"
	"github.com/fortuna/courtside/internal/reconcile"
	"github.com/fortuna/courtside/internal/refresh"
	"github.com/fortuna/courtside/internal/upstream"
	"github.com/gorilla/mux"
)

// HealthChecker reports backing-store liveness. The Redis cache wrapper is
// the production implementation.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	agg     *aggregate.Service
	rec     *reconcile.Reconciler
	refresh *refresh.Manager
	health  HealthChecker
}

// NewHandler creates a new handler
func NewHandler(agg *aggregate.Service, rec *reconcile.Reconciler, rm *refresh.Manager) *Handler {
	return &Handler{agg: agg, rec: rec, refresh: rm}
}

// WithHealthCheck attaches a backing-store liveness probe to /health.
func (h *Handler) WithHealthCheck(hc HealthChecker) *Handler {
	h.health = hc
	return h
}

// HealthCheck handles health check requests. The service itself is always
// healthy when it can answer; the cache status is reported alongside.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{
		"status":  "healthy",
		"service": "courtside",
		"version": "1.0.0",
	}

	if h.health != nil {
		if err := h.health.HealthCheck(r.Context()); err != nil {
			log.Printf("[rest] cache health check failed: %v", err)
			body["cache"] = "unavailable"
		} else {
			body["cache"] = "ok"
		}
	}

	respondJSON(w, http.StatusOK, body)
}

// GetTournament returns the consolidated tournament view: classified games,
// rounds, and calendar, with completed games reconciled against the cache
// and refresh polling synced to the live set.
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.agg.Tournament(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch tournament data", err)
		return
	}

	if h.rec != nil {
		resp.Games.Completed = h.rec.MergeCompleted(ctx, resp.Games.Completed)
		for i := range resp.Rounds {
			h.rec.FillBracket(ctx, resp.Rounds[i].Games)
		}
	}

	if h.refresh != nil {
		h.refresh.Sync(ctx, resp.Games.Live)
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetRankings returns the primary poll as an ordered array of entries;
// browser clients iterate the body directly.
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.agg.Rankings(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch rankings", err)
		return
	}

	respondJSON(w, http.StatusOK, resp.Entries)
}

// GetGame returns a single game by ID
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameID"]

	game, err := h.agg.Game(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			respondError(w, http.StatusNotFound, "Game not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch game", err)
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// GetPlayByPlay returns the play feed for a game. Live games are served
// from the refresh manager's latest polled snapshot when one exists; a
// game with no play data yet is a 404 with the game id, not an error.
func (h *Handler) GetPlayByPlay(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameID"]

	if h.refresh != nil {
		if snapshot, ok := h.refresh.Latest(gameID); ok {
			respondJSON(w, http.StatusOK, snapshot)
			return
		}
	}

	resp, err := h.agg.PlayByPlay(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			respondJSON(w, http.StatusNotFound, map[string]string{
				"error":     "No play-by-play data available yet",
				"gameId":    gameID,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch play-by-play", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetLeagueGames returns the secondary league's classified scoreboard
func (h *Handler) GetLeagueGames(w http.ResponseWriter, r *http.Request) {
	resp, err := h.agg.LeagueGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch league games", err)
		return
	}

	respondJSON(w, http.StatusOK, resp.Games)
}

// GetLeagueStandings returns the secondary league table, degrading to an
// empty list on upstream failure
func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.agg.LeagueStandings(r.Context())
	if err != nil {
		log.Printf("[rest] league standings unavailable, serving empty list: %v", err)
		respondJSON(w, http.StatusOK, []model.StandingRow{})
		return
	}

	respondJSON(w, http.StatusOK, resp.Standings)
}

// GetLeagueNews returns the secondary league's articles, degrading to an
// empty list when both the feed and the scrape fallback fail
func (h *Handler) GetLeagueNews(w http.ResponseWriter, r *http.Request) {
	resp, err := h.agg.LeagueNews(r.Context())
	if err != nil {
		log.Printf("[rest] league news unavailable, serving empty list: %v", err)
		respondJSON(w, http.StatusOK, []model.NewsArticle{})
		return
	}

	respondJSON(w, http.StatusOK, resp.Articles)
}

// GetMotorsportSchedule returns the F1 race calendar
func (h *Handler) GetMotorsportSchedule(w http.ResponseWriter, r *http.Request) {
	resp, err := h.agg.MotorsportSchedule(r.Context())
	if err != nil {
		if errors.Is(err, upstream.ErrNoData) {
			respondJSON(w, http.StatusOK, &aggregate.MotorsportScheduleResponse{
				Upcoming:    []model.RaceEvent{},
				Completed:   []model.RaceEvent{},
				LastUpdated: time.Now(),
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch race schedule", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetMotorsportStandings returns the F1 championship tables
func (h *Handler) GetMotorsportStandings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.agg.MotorsportStandings(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch championship standings", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetSocialFeed returns recent posts for the configured query, degrading
// to an empty list on provider failure
func (h *Handler) GetSocialFeed(w http.ResponseWriter, r *http.Request) {
	resp, err := h.agg.SocialFeed(r.Context())
	if err != nil {
		log.Printf("[rest] social feed unavailable, serving empty list: %v", err)
		respondJSON(w, http.StatusOK, []model.SocialPost{})
		return
	}

	respondJSON(w, http.StatusOK, resp.Posts)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes the uniform error body
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":     message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		response["message"] = err.Error()
	}

	respondJSON(w, status, response)
}
