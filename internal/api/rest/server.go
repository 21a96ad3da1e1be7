// Package rest serves the aggregated sports data over HTTP.
package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server. The router also carries the
// chat relay handler so everything serves off one port.
func NewServer(port string, handler *Handler, chatHandler http.Handler) *Server {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Tournament
	api.HandleFunc("/ncaaw/tournament", handler.GetTournament).Methods("GET")
	api.HandleFunc("/ncaaw/rankings", handler.GetRankings).Methods("GET")
	api.HandleFunc("/ncaaw/game/{gameID}", handler.GetGame).Methods("GET")
	api.HandleFunc("/ncaaw/game/{gameID}/playbyplay", handler.GetPlayByPlay).Methods("GET")

	// Secondary league
	api.HandleFunc("/pwhl/games", handler.GetLeagueGames).Methods("GET")
	api.HandleFunc("/pwhl/standings", handler.GetLeagueStandings).Methods("GET")
	api.HandleFunc("/pwhl/news", handler.GetLeagueNews).Methods("GET")

	// Motorsport
	api.HandleFunc("/f1/schedule", handler.GetMotorsportSchedule).Methods("GET")
	api.HandleFunc("/f1/standings", handler.GetMotorsportStandings).Methods("GET")

	// Social
	api.HandleFunc("/tweets/marchmadness", handler.GetSocialFeed).Methods("GET")

	// Chat relay
	if chatHandler != nil {
		router.Handle("/ws/chat", chatHandler)
	}

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Router exposes the configured router, for tests.
func (s *Server) Router() http.Handler {
	return s.server.Handler
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
