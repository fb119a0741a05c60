// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/models"
	"github.com/danielhkuo/runoff/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *election.Session) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	session := election.NewSession()
	return NewRouter(session, conn, testutil.GetTestConfig()), session
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "runoff API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t)

	// 400, 404, 409 are all valid responses depending on handler logic
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/elections"},
		{"GET", "/elections/current"},
		{"POST", "/elections/current/close"},
		{"POST", "/elections/current/ballots"},
		{"GET", "/elections/current/results"},
		{"GET", "/elections/history"},
		{"GET", "/elections/history/some-id"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/elections/current"},
		{"PUT", "/elections/current/close"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestFullElectionThroughRouter(t *testing.T) {
	mux, _ := newTestRouter(t)

	serve := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
		return w
	}

	w := serve("POST", "/elections", models.StartElectionRequest{CandidateList: "A, B, C"})
	testutil.AssertStatus(t, w, http.StatusCreated)

	for _, b := range []models.CastBallotRequest{
		{Rank1: "A", Rank2: "B", Rank3: "C"},
		{Rank1: "A", Rank2: "C", Rank3: "B"},
		{Rank1: "B", Rank2: "A", Rank3: "C"},
	} {
		w = serve("POST", "/elections/current/ballots", b)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	w = serve("POST", "/elections/current/close", nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = serve("GET", "/elections/current/results", nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var result models.ResultResponse
	testutil.AssertJSON(t, w, &result)
	if result.Winner != "A" || result.WinnerVotes != 2 {
		t.Errorf("Expected A with 2 votes, got %s with %d", result.Winner, result.WinnerVotes)
	}

	w = serve("GET", "/elections/history/"+result.ElectionID, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestHistoryDisabledWithoutDatabase(t *testing.T) {
	mux := NewRouter(election.NewSession(), nil, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/elections/history", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 without a database, got %d", w.Code)
	}
}
