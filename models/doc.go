// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and archive types for the API.

# Request Types

Types for parsing incoming JSON:

  - StartElectionRequest: candidate_list
  - CastBallotRequest: rank1, rank2, rank3

# Response Types

Types for JSON responses:

  - ElectionResponse: election_id, status, candidates, ballot_count
  - CastBallotResponse: ballot_count, message
  - CloseElectionResponse: closed_at, archived
  - ResultResponse: winner, winner_votes, rounds, summary
  - HistoryResponse: results
  - ErrorResponse: error, message, next

ErrorResponse.Next names the route a client should move to when the
election is in the wrong phase: the start page when a ballot is cast
after close, the current election when results are requested while open.

# Archive Types

  - ArchivedResult: a closed election's result and rounds

# Constants

Status values:

	StatusOpen   = "open"
	StatusClosed = "closed"

Voting method:

	MethodIRV = "irv"
*/
package models
