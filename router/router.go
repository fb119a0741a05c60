// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/runoff/cliparse"
	"github.com/danielhkuo/runoff/db"
	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/handlers"
	"github.com/danielhkuo/runoff/middleware"
)

// NewRouter wires every route to session. conn may be nil, which disables
// the result history.
func NewRouter(session *election.Session, conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	var store *db.Store
	if conn != nil {
		store = db.NewStore(conn)
	}

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(session, store, cfg)
	votingHandler := handlers.NewVotingHandler(session, cfg)
	resultsHandler := handlers.NewResultsHandler(session, store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Election lifecycle
	mux.HandleFunc("POST /elections", middleware.WithLogging(electionHandler.StartElection))
	mux.HandleFunc("GET /elections/current", middleware.WithLogging(electionHandler.GetElection))
	mux.HandleFunc("POST /elections/current/close", middleware.WithLogging(electionHandler.CloseElection))

	// Voting
	mux.HandleFunc("POST /elections/current/ballots", middleware.WithLogging(votingHandler.CastBallot))

	// Results (sealed until closed) and archive
	mux.HandleFunc("GET /elections/current/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /elections/history", middleware.WithLogging(resultsHandler.GetHistory))
	mux.HandleFunc("GET /elections/history/{id}", middleware.WithLogging(resultsHandler.GetArchivedResult))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("runoff API v1"))
	})

	return mux
}
