package models

import (
	"time"

	"github.com/danielhkuo/runoff/election"
)

// Election status constants
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Voting method constants
const (
	MethodIRV = "irv"
)

// Request types

// Candidate names joined by the configured separator, e.g. "Alice, Bob, Carol"
type StartElectionRequest struct {
	CandidateList string `json:"candidate_list"`
}

type CastBallotRequest struct {
	Rank1 string `json:"rank1"`
	Rank2 string `json:"rank2"`
	Rank3 string `json:"rank3"`
}

// Response types

type ElectionResponse struct {
	ElectionID  string   `json:"election_id"`
	Status      string   `json:"status"`
	Candidates  []string `json:"candidates"`
	BallotCount int      `json:"ballot_count"`
}

type CastBallotResponse struct {
	BallotCount int    `json:"ballot_count"`
	Message     string `json:"message"`
}

type CloseElectionResponse struct {
	ClosedAt *time.Time `json:"closed_at,omitempty"` // nil when no election was ever opened
	Archived bool       `json:"archived"`
}

type ResultResponse struct {
	ElectionID  string           `json:"election_id"`
	Winner      string           `json:"winner"`
	WinnerVotes int              `json:"winner_votes"`
	NoWinner    bool             `json:"no_winner"`
	RoundNumber int              `json:"round_number"`
	Rounds      []election.Round `json:"rounds"`
	BallotCount int              `json:"ballot_count"`
	Summary     string           `json:"summary"`
	ClosedAt    *time.Time       `json:"closed_at,omitempty"`
}

type HistoryResponse struct {
	Results []ArchivedResult `json:"results"`
}

// Domain types

// ArchivedResult is a closed election as stored in the archive
type ArchivedResult struct {
	ID          string           `json:"id"`
	Method      string           `json:"method"`
	Winner      string           `json:"winner"`
	WinnerVotes int              `json:"winner_votes"`
	NoWinner    bool             `json:"no_winner"`
	Candidates  []string         `json:"candidates"`
	Rounds      []election.Round `json:"rounds"`
	BallotCount int              `json:"ballot_count"`
	InputsHash  string           `json:"inputs_hash"`
	OpenedAt    time.Time        `json:"opened_at"`
	ClosedAt    time.Time        `json:"closed_at"`
	ClosedAgo   string           `json:"closed_ago,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Next    string `json:"next,omitempty"` // where the client should go instead
}
