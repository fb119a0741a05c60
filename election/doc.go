// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election holds the election session state machine and the
instant-runoff tally.

# Session Lifecycle

A Session holds one election at a time:

	s := election.NewSession()
	s.Start([]string{"Alice", "Bob", "Carol"}) // reset + register, opens
	s.CastBallot(election.Ballot{"Alice", "Carol", "Bob"})
	s.Close()
	res, err := s.Result()

Start wipes any previous election before registering the new roster. A
blank roster is not an error: Start returns 0 and the session stays closed.

Every method takes the session lock, so a Session is safe for concurrent use.

# Ballots

A Ballot is exactly three ranked names ([BallotSize]string). The three
entries must be distinct. Names are not checked against the roster; a
ballot naming an unregistered candidate is accepted and tallied like any
other name.

# Tally

Tally runs instant-runoff with last-place elimination over a ballot list:

 1. The active set is every distinct name on any ballot, ordered by first
    appearance (ballots in cast order, ranks 1 to 3).
 2. Each ballot counts for its highest ranked active name.
 3. A strict majority of counted votes wins.
 4. Otherwise the lowest count is eliminated. Ties go to the name that
    appears first in the active order.
 5. When one name remains it wins with its count from the last round.

# Errors

	ErrDuplicateCandidate - roster repeats a name
	ErrDuplicateChoice    - ballot repeats a name
	ErrSessionClosed      - ballot cast while closed
	ErrElectionOpen       - result requested while open
	ErrNoCandidates       - tally over ballots naming nobody
*/
package election
