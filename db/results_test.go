// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/runoff/cliparse"
	"github.com/danielhkuo/runoff/election"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open(cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func closedSnapshot(t *testing.T, ballots ...election.Ballot) election.Snapshot {
	t.Helper()

	s := election.NewSession()
	if _, err := s.Start([]string{"A", "B", "C"}); err != nil {
		t.Fatalf("Failed to start election: %v", err)
	}
	for _, b := range ballots {
		if err := s.CastBallot(b); err != nil {
			t.Fatalf("Failed to cast ballot: %v", err)
		}
	}
	s.Close()

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Failed to snapshot: %v", err)
	}
	return snap
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	// Second call must not fail
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema should be safe to repeat: %v", err)
	}
}

func TestOpenNone(t *testing.T) {
	conn, err := Open(cliparse.Config{DatabaseType: cliparse.DatabaseNone})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if conn != nil {
		t.Error("Expected nil connection for database type none")
	}
}

func TestOpenUnknownType(t *testing.T) {
	if _, err := Open(cliparse.Config{DatabaseType: "mysql"}); err == nil {
		t.Error("Expected error for unknown database type")
	}
}

func TestSaveAndGetResult(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	store := NewStore(conn)
	ctx := context.Background()

	snap := closedSnapshot(t,
		election.Ballot{"A", "B", "C"},
		election.Ballot{"B", "A", "C"},
		election.Ballot{"C", "A", "B"},
		election.Ballot{"C", "B", "A"},
	)

	if err := store.SaveResult(ctx, snap); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	got, err := store.GetResult(ctx, snap.ID)
	if err != nil {
		t.Fatalf("GetResult failed: %v", err)
	}

	if got.ID != snap.ID {
		t.Errorf("Expected ID %s, got %s", snap.ID, got.ID)
	}
	if got.Winner != "C" || got.WinnerVotes != 2 {
		t.Errorf("Expected C with 2 votes, got %s with %d", got.Winner, got.WinnerVotes)
	}
	if got.NoWinner {
		t.Error("Expected a winner")
	}
	if got.BallotCount != 4 {
		t.Errorf("Expected 4 ballots, got %d", got.BallotCount)
	}
	if got.InputsHash != snap.InputsHash {
		t.Errorf("Inputs hash mismatch: %s vs %s", got.InputsHash, snap.InputsHash)
	}
	if len(got.Candidates) != 3 || got.Candidates[0] != "A" {
		t.Errorf("Unexpected candidates: %v", got.Candidates)
	}
	if len(got.Rounds) != 2 || got.Rounds[0].Eliminated != "A" {
		t.Errorf("Unexpected rounds: %+v", got.Rounds)
	}
	if got.ClosedAt.Sub(snap.ClosedAt).Abs() > time.Second {
		t.Errorf("Closed at mismatch: %v vs %v", got.ClosedAt, snap.ClosedAt)
	}
}

func TestSaveResultTwiceFails(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	store := NewStore(conn)
	snap := closedSnapshot(t, election.Ballot{"A", "B", "C"})

	if err := store.SaveResult(context.Background(), snap); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if err := store.SaveResult(context.Background(), snap); err == nil {
		t.Error("Expected duplicate election ID to be rejected")
	}
}

func TestGetResultNotFound(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	_, err := NewStore(conn).GetResult(context.Background(), "missing")
	if !errors.Is(err, ErrResultNotFound) {
		t.Errorf("Expected ErrResultNotFound, got %v", err)
	}
}

func TestListResults(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	store := NewStore(conn)
	ctx := context.Background()

	results, err := store.ListResults(ctx, 10)
	if err != nil {
		t.Fatalf("ListResults failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected empty archive, got %d", len(results))
	}

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		snap := closedSnapshot(t, election.Ballot{"A", "B", "C"})
		snap.ClosedAt = base.Add(time.Duration(i) * time.Hour)
		ids = append(ids, snap.ID)
		if err := store.SaveResult(ctx, snap); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	results, err = store.ListResults(ctx, 2)
	if err != nil {
		t.Fatalf("ListResults failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	// Newest first
	if results[0].ID != ids[2] || results[1].ID != ids[1] {
		t.Errorf("Unexpected order: %s, %s", results[0].ID, results[1].ID)
	}
}

func TestSaveNoWinnerResult(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	store := NewStore(conn)
	snap := closedSnapshot(t)

	if err := store.SaveResult(context.Background(), snap); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	got, err := store.GetResult(context.Background(), snap.ID)
	if err != nil {
		t.Fatalf("GetResult failed: %v", err)
	}
	if !got.NoWinner || got.Winner != "" || got.WinnerVotes != 0 {
		t.Errorf("Expected no-winner result, got %+v", got)
	}
}
