// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the runoff API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(session, conn, cfg)

conn may be nil, in which case the history routes answer 404.

# Endpoints

Health:

	GET /health

Election lifecycle:

	POST /elections               - Start a new election (discards the current one)
	GET  /elections/current       - Candidates, status, ballot count
	POST /elections/current/close - Close voting (idempotent)

Voting:

	POST /elections/current/ballots - Cast a ranked ballot

Results:

	GET /elections/current/results - Winner and rounds (closed only)
	GET /elections/history         - Archived results, newest first
	GET /elections/history/{id}    - One archived result

# Handler Initialization

The router creates handler instances with dependency injection:

	electionHandler := handlers.NewElectionHandler(session, store, cfg)
	votingHandler := handlers.NewVotingHandler(session, cfg)
	resultsHandler := handlers.NewResultsHandler(session, store, cfg)

All handlers share the one election session.
*/
package router
