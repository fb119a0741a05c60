// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session owns the one live election. The zero value is not usable; call NewSession.
type Session struct {
	mu  sync.Mutex
	now func() time.Time
	st  state
}

// state is everything a reset discards
type state struct {
	id         string
	candidates []string
	ballots    []Ballot
	open       bool
	openedAt   time.Time
	closedAt   time.Time
}

// Snapshot is a read-only copy of a session, taken after it closes
type Snapshot struct {
	ID         string
	Candidates []string
	Ballots    []Ballot
	Result     Result
	InputsHash string
	OpenedAt   time.Time
	ClosedAt   time.Time
}

func NewSession() *Session {
	s := &Session{now: time.Now}
	s.st = s.fresh()
	return s
}

func (s *Session) fresh() state {
	return state{id: uuid.NewString()}
}

// Reset discards the current election and starts over closed and empty
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = s.fresh()
}

// Start resets the session and registers names in a single step.
// A rejected roster still leaves the session reset.
func (s *Session) Start(names []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = s.fresh()
	return s.register(names)
}

// RegisterCandidates trims names and drops blanks. A non-empty roster
// opens the session; an all-blank one returns 0 and changes nothing,
// so an already open election stays open with its roster. Use Start to
// get a closed session on blank input.
func (s *Session) RegisterCandidates(names []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register(names)
}

func (s *Session) register(names []string) (int, error) {
	roster := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if seen[name] {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateCandidate, name)
		}
		seen[name] = true
		roster = append(roster, name)
	}

	if len(roster) == 0 {
		return 0, nil
	}

	s.st.candidates = roster
	s.st.open = true
	s.st.openedAt = s.now()
	s.st.closedAt = time.Time{}
	return len(roster), nil
}

// CastBallot appends b. Choices are not checked against the roster.
func (s *Session) CastBallot(b Ballot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.st.open {
		return ErrSessionClosed
	}

	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			if b[i] == b[j] {
				return fmt.Errorf("%w: %q", ErrDuplicateChoice, b[i])
			}
		}
	}

	s.st.ballots = append(s.st.ballots, b)
	return nil
}

// Close stops voting. It reports whether this call closed an open election.
func (s *Session) Close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.close()
}

func (s *Session) close() bool {
	if !s.st.open {
		return false
	}
	s.st.open = false
	s.st.closedAt = s.now()
	return true
}

// CloseSnapshot closes the election and snapshots it without letting
// another caller start a new election in between.
func (s *Session) CloseSnapshot() (Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	closed := s.close()
	snap, err := s.snapshot()
	return snap, closed, err
}

// Result tallies a closed election. No candidates or no ballots gives a
// NoWinner result rather than an error.
func (s *Session) Result() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result()
}

func (s *Session) result() (Result, error) {
	if s.st.open {
		return Result{}, ErrElectionOpen
	}
	if len(s.st.candidates) == 0 || len(s.st.ballots) == 0 {
		return Result{NoWinner: true}, nil
	}
	return Tally(s.st.ballots)
}

// Snapshot copies a closed election together with its result
func (s *Session) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() (Snapshot, error) {
	res, err := s.result()
	if err != nil {
		return Snapshot{}, err
	}

	ballots := append([]Ballot(nil), s.st.ballots...)
	return Snapshot{
		ID:         s.st.id,
		Candidates: append([]string(nil), s.st.candidates...),
		Ballots:    ballots,
		Result:     res,
		InputsHash: InputsHash(ballots),
		OpenedAt:   s.st.openedAt,
		ClosedAt:   s.st.closedAt,
	}, nil
}

// Info is the live view of a session
type Info struct {
	ID          string
	Candidates  []string
	Open        bool
	BallotCount int
}

// Info reads the live state in one step
func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{
		ID:          s.st.id,
		Candidates:  append([]string(nil), s.st.candidates...),
		Open:        s.st.open,
		BallotCount: len(s.st.ballots),
	}
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.id
}

func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.open
}

// Candidates returns the roster in registration order
func (s *Session) Candidates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.st.candidates...)
}

func (s *Session) Ballots() []Ballot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Ballot(nil), s.st.ballots...)
}

func (s *Session) BallotCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.ballots)
}

func (s *Session) OpenedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.openedAt
}

// ClosedAt is zero until the election closes
func (s *Session) ClosedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.closedAt
}
