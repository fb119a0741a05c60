// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/runoff/cliparse"
	"github.com/danielhkuo/runoff/db"
	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/middleware"
	"github.com/danielhkuo/runoff/models"
)

const noWinnerSummary = "No valid winner (no candidates or no ballots)."

type ResultsHandler struct {
	session *election.Session
	store   *db.Store // nil when archiving is disabled
	cfg     cliparse.Config
}

func NewResultsHandler(session *election.Session, store *db.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{session: session, store: store, cfg: cfg}
}

// GetResults handles GET /elections/current/results
// Results are sealed while the election is open
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	snap, err := h.session.Snapshot()
	if errors.Is(err, election.ErrElectionOpen) {
		middleware.RedirectResponse(w, http.StatusConflict, "Results are hidden until the election is closed", votingPath)
		return
	}
	if err != nil {
		slog.Error("failed to tally election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute results")
		return
	}

	rounds := snap.Result.Rounds
	if rounds == nil {
		rounds = []election.Round{}
	}

	resp := models.ResultResponse{
		ElectionID:  snap.ID,
		Winner:      snap.Result.Winner,
		WinnerVotes: snap.Result.Votes,
		NoWinner:    snap.Result.NoWinner,
		RoundNumber: len(rounds),
		Rounds:      rounds,
		BallotCount: len(snap.Ballots),
		Summary:     summarize(snap.Result),
	}
	if !snap.ClosedAt.IsZero() {
		closedAt := snap.ClosedAt
		resp.ClosedAt = &closedAt
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetHistory handles GET /elections/history
// Optional ?limit= is capped at the configured history limit
func (h *ResultsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Result history is disabled")
		return
	}

	limit := h.cfg.HistoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if n < limit {
			limit = n
		}
	}

	results, err := h.store.ListResults(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for i := range results {
		results[i].ClosedAgo = humanize.Time(results[i].ClosedAt)
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{Results: results})
}

// GetArchivedResult handles GET /elections/history/{id}
func (h *ResultsHandler) GetArchivedResult(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Result history is disabled")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	res, err := h.store.GetResult(r.Context(), id)
	if errors.Is(err, db.ErrResultNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Result not found")
		return
	}
	if err != nil {
		slog.Error("failed to query result", "election_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	res.ClosedAgo = humanize.Time(res.ClosedAt)
	middleware.JSONResponse(w, http.StatusOK, res)
}

// summarize describes a result in one line, e.g.
// "Alice wins with 1,204 of 2,310 votes in the 3rd round."
func summarize(res election.Result) string {
	if res.NoWinner || len(res.Rounds) == 0 {
		return noWinnerSummary
	}

	last := res.Rounds[len(res.Rounds)-1]
	return fmt.Sprintf("%s wins with %s of %s votes in the %s round.",
		res.Winner,
		humanize.Comma(int64(res.Votes)),
		humanize.Comma(int64(last.Total)),
		humanize.Ordinal(last.Number),
	)
}
