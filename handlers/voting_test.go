// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/models"
	"github.com/danielhkuo/runoff/testutil"
)

func TestCastBallot(t *testing.T) {
	tests := []struct {
		name           string
		body           models.CastBallotRequest
		expectedStatus int
	}{
		{
			name:           "valid ballot",
			body:           models.CastBallotRequest{Rank1: "A", Rank2: "B", Rank3: "C"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unregistered names accepted",
			body:           models.CastBallotRequest{Rank1: "Z", Rank2: "A", Rank3: "B"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate first and last",
			body:           models.CastBallotRequest{Rank1: "A", Rank2: "B", Rank3: "A"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate second and third",
			body:           models.CastBallotRequest{Rank1: "A", Rank2: "C", Rank3: "C"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing rank",
			body:           models.CastBallotRequest{Rank1: "A", Rank2: "B"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := election.NewSession()
			testutil.OpenTestElection(t, session, "A", "B", "C")
			handler := NewVotingHandler(session, testutil.GetTestConfig())

			req := testutil.MakeRequest("POST", "/elections/current/ballots", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CastBallot(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.CastBallotResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.BallotCount != 1 {
					t.Errorf("Expected ballot count 1, got %d", resp.BallotCount)
				}
			} else if session.BallotCount() != 0 {
				t.Errorf("Rejected ballot was stored")
			}
		})
	}
}

func TestCastBallotClosedRedirectsToStart(t *testing.T) {
	session := election.NewSession()
	handler := NewVotingHandler(session, testutil.GetTestConfig())

	cases := map[string]func(){
		"never started": func() {},
		"after close": func() {
			testutil.OpenTestElection(t, session, "A", "B", "C")
			session.Close()
		},
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			setup()

			body := models.CastBallotRequest{Rank1: "A", Rank2: "B", Rank3: "C"}
			req := testutil.MakeRequest("POST", "/elections/current/ballots", body, nil)
			w := httptest.NewRecorder()

			handler.CastBallot(w, req)

			testutil.AssertStatus(t, w, http.StatusConflict)
			if loc := w.Header().Get("Location"); loc != "/elections" {
				t.Errorf("Expected Location /elections, got %q", loc)
			}

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Next != "/elections" {
				t.Errorf("Expected next /elections, got %q", resp.Next)
			}
			if session.BallotCount() != 0 {
				t.Errorf("Expected no ballots, got %d", session.BallotCount())
			}
		})
	}
}

func TestCastBallotInvalidJSON(t *testing.T) {
	session := election.NewSession()
	testutil.OpenTestElection(t, session, "A", "B", "C")
	handler := NewVotingHandler(session, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/elections/current/ballots", nil)
	w := httptest.NewRecorder()

	handler.CastBallot(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
