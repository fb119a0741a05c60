// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the runoff API.

# Handler Types

Each handler is a struct holding the shared election session, an optional
result store and the config:

  - ElectionHandler: election lifecycle (start, inspect, close)
  - VotingHandler: ballot casting
  - ResultsHandler: live results and the archive of past elections

A nil *db.Store disables archiving; closing still works and history
endpoints answer 404.

	electionHandler := handlers.NewElectionHandler(session, store, cfg)

# Election Lifecycle

	POST /elections                → StartElection (discards any current election)
	GET  /elections/current        → GetElection
	POST /elections/current/close  → CloseElection (archives on first close)

# Voting

	POST /elections/current/ballots → CastBallot

A ballot names exactly three distinct choices. Casting while no election is
open answers 409 with "next" pointing at /elections.

# Results

	GET /elections/current/results → GetResults
	GET /elections/history         → GetHistory
	GET /elections/history/{id}    → GetArchivedResult

Results of an open election are sealed: 409 with "next" pointing back at
/elections/current.
*/
package handlers
