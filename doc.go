// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the runoff API server.

runoff runs one ranked-choice election at a time: register candidates,
collect ballots ranking three of them, close, and find the winner by
instant-runoff with last-place elimination.

# Starting the Server

With no configuration the server listens on 3318 and archives results to
runoff.db:

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

Settings are also read from the environment and from a .env file.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or none (default: sqlite)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - CANDIDATE_SEPARATOR (-sep): splits the candidate list (default: ",")
  - HISTORY_LIMIT (-history): most archived results returned (default: 20)

# Architecture

  - election: the session state machine and the tally
  - handlers: HTTP request handlers (elections, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Result archive
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
