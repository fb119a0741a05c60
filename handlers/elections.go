// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/runoff/cliparse"
	"github.com/danielhkuo/runoff/db"
	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/middleware"
	"github.com/danielhkuo/runoff/models"
)

type ElectionHandler struct {
	session *election.Session
	store   *db.Store // nil when archiving is disabled
	cfg     cliparse.Config
}

func NewElectionHandler(session *election.Session, store *db.Store, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{session: session, store: store, cfg: cfg}
}

// StartElection handles POST /elections
// Discards any current election and opens a new one
func (h *ElectionHandler) StartElection(w http.ResponseWriter, r *http.Request) {
	var req models.StartElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	previous := h.session.Info()

	names := strings.Split(req.CandidateList, h.cfg.CandidateSeparator)
	n, err := h.session.Start(names)
	if errors.Is(err, election.ErrDuplicateCandidate) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Duplicate candidates are not allowed.")
		return
	}
	if err != nil {
		slog.Error("failed to start election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start election")
		return
	}

	if previous.Open {
		slog.Info("open election discarded", "election_id", previous.ID, "ballots", previous.BallotCount)
	}

	if n == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Enter at least one candidate")
		return
	}

	info := h.session.Info()
	slog.Info("election started", "election_id", info.ID, "candidates", n)

	middleware.JSONResponse(w, http.StatusCreated, electionResponse(info))
}

// GetElection handles GET /elections/current
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, electionResponse(h.session.Info()))
}

// CloseElection handles POST /elections/current/close
// Closing twice is not an error; only the first close archives the result
func (h *ElectionHandler) CloseElection(w http.ResponseWriter, r *http.Request) {
	snap, closed, err := h.session.CloseSnapshot()
	if err != nil {
		slog.Error("failed to tally closed election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close election")
		return
	}

	archived := false
	if closed {
		slog.Info("election closed", "election_id", snap.ID, "ballots", len(snap.Ballots))

		if h.store != nil {
			// Non-fatal: the election is closed either way
			if err := h.store.SaveResult(r.Context(), snap); err != nil {
				slog.Warn("failed to archive result", "election_id", snap.ID, "error", err)
			} else {
				archived = true
			}
		}
	}

	resp := models.CloseElectionResponse{Archived: archived}
	if !snap.ClosedAt.IsZero() {
		closedAt := snap.ClosedAt
		resp.ClosedAt = &closedAt
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

func electionResponse(info election.Info) models.ElectionResponse {
	status := models.StatusClosed
	if info.Open {
		status = models.StatusOpen
	}

	candidates := info.Candidates
	if candidates == nil {
		candidates = []string{}
	}

	return models.ElectionResponse{
		ElectionID:  info.ID,
		Status:      status,
		Candidates:  candidates,
		BallotCount: info.BallotCount,
	}
}
