// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"crypto/sha256"
	"encoding/hex"
)

// BallotSize is the number of ranked choices on every ballot
const BallotSize = 3

// Ballot is a voter's choices, rank 1 first
type Ballot [BallotSize]string

// Count is one candidate's vote total in a round
type Count struct {
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
}

// Round records a single pass of the runoff
type Round struct {
	Number     int     `json:"number"` // 1-indexed
	Counts     []Count `json:"counts"`
	Total      int     `json:"total"`
	Exhausted  int     `json:"exhausted"`
	Eliminated string  `json:"eliminated,omitempty"`
}

// Result is the outcome of a tally
type Result struct {
	Winner   string  `json:"winner"`
	Votes    int     `json:"votes"`
	NoWinner bool    `json:"no_winner"`
	Rounds   []Round `json:"rounds"`
}

// ComputeWinner runs the runoff and returns only the winner and their final count
func ComputeWinner(ballots []Ballot) (string, int, error) {
	res, err := Tally(ballots)
	if err != nil {
		return "", 0, err
	}
	return res.Winner, res.Votes, nil
}

// Tally runs instant-runoff with last-place elimination over ballots.
// The active set is taken from the ballots themselves, not from a roster.
func Tally(ballots []Ballot) (Result, error) {
	return runoff(ballots, activeOrder(ballots))
}

// activeOrder lists every distinct name on the ballots by first appearance.
// This order decides which tied candidate is eliminated.
func activeOrder(ballots []Ballot) []string {
	seen := make(map[string]bool)
	var order []string
	for _, b := range ballots {
		for _, name := range b {
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
		}
	}
	return order
}

func runoff(ballots []Ballot, active []string) (Result, error) {
	if len(active) == 0 {
		return Result{}, ErrNoCandidates
	}

	// Copy so eliminations never touch the caller's slice
	active = append([]string(nil), active...)

	var rounds []Round
	for {
		round := countRound(ballots, active)
		round.Number = len(rounds) + 1

		for _, c := range round.Counts {
			// count > total/2 without floor division. A lone candidate
			// wins even with no votes.
			if 2*c.Votes > round.Total || len(active) == 1 {
				rounds = append(rounds, round)
				return Result{Winner: c.Candidate, Votes: c.Votes, Rounds: rounds}, nil
			}
		}

		// Earliest candidate holding the minimum goes out
		lowest := 0
		for i, c := range round.Counts {
			if c.Votes < round.Counts[lowest].Votes {
				lowest = i
			}
		}
		round.Eliminated = active[lowest]
		rounds = append(rounds, round)
		active = append(active[:lowest], active[lowest+1:]...)

		if len(active) == 1 {
			last := active[0]
			votes := 0
			for _, c := range round.Counts {
				if c.Candidate == last {
					votes = c.Votes
				}
			}
			return Result{Winner: last, Votes: votes, Rounds: rounds}, nil
		}
	}
}

// countRound credits each ballot to its highest ranked active choice
func countRound(ballots []Ballot, active []string) Round {
	index := make(map[string]int, len(active))
	counts := make([]Count, len(active))
	for i, name := range active {
		index[name] = i
		counts[i] = Count{Candidate: name}
	}

	round := Round{Counts: counts}
	for _, b := range ballots {
		credited := false
		for _, choice := range b {
			if i, ok := index[choice]; ok {
				counts[i].Votes++
				round.Total++
				credited = true
				break
			}
		}
		if !credited {
			round.Exhausted++
		}
	}
	return round
}

// InputsHash digests the ballots in cast order for result verification
func InputsHash(ballots []Ballot) string {
	h := sha256.New()
	for _, b := range ballots {
		for _, name := range b {
			h.Write([]byte(name))
			h.Write([]byte{0})
		}
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
