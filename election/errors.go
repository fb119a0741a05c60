// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

var (
	ErrDuplicateCandidate = errors.New("duplicate candidate")
	ErrDuplicateChoice    = errors.New("duplicate choice")
	ErrSessionClosed      = errors.New("election is not open")
	ErrElectionOpen       = errors.New("election is still open")
	ErrNoCandidates       = errors.New("no candidates on any ballot")
)
