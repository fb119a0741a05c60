// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/runoff/cliparse"
	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/middleware"
	"github.com/danielhkuo/runoff/models"
)

// Where clients are sent when a request arrives in the wrong phase
const (
	startPath  = "/elections"
	votingPath = "/elections/current"
)

type VotingHandler struct {
	session *election.Session
	cfg     cliparse.Config
}

func NewVotingHandler(session *election.Session, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{session: session, cfg: cfg}
}

// CastBallot handles POST /elections/current/ballots
func (h *VotingHandler) CastBallot(w http.ResponseWriter, r *http.Request) {
	if !h.session.IsOpen() {
		middleware.RedirectResponse(w, http.StatusConflict, "Election is not open for voting", startPath)
		return
	}

	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Rank1 == "" || req.Rank2 == "" || req.Rank3 == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "rank1, rank2 and rank3 are required")
		return
	}

	err := h.session.CastBallot(election.Ballot{req.Rank1, req.Rank2, req.Rank3})
	switch {
	case errors.Is(err, election.ErrSessionClosed):
		// Closed between the check above and the cast
		middleware.RedirectResponse(w, http.StatusConflict, "Election is not open for voting", startPath)
		return
	case errors.Is(err, election.ErrDuplicateChoice):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Duplicate choices are not allowed.")
		return
	case err != nil:
		slog.Error("failed to cast ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast ballot")
		return
	}

	count := h.session.BallotCount()
	slog.Info("ballot cast", "ballot_count", count)

	middleware.JSONResponse(w, http.StatusCreated, models.CastBallotResponse{
		BallotCount: count,
		Message:     "Ballot cast successfully",
	})
}
