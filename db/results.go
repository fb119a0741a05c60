// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/runoff/election"
	"github.com/danielhkuo/runoff/models"
)

var ErrResultNotFound = errors.New("result not found")

// Store archives closed elections. It is write-once per election ID.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// payload holds the parts of a result without their own column
type payload struct {
	Candidates []string         `json:"candidates"`
	Rounds     []election.Round `json:"rounds"`
}

// SaveResult stores the result of a closed election
func (s *Store) SaveResult(ctx context.Context, snap election.Snapshot) error {
	body, err := json.Marshal(payload{
		Candidates: snap.Candidates,
		Rounds:     snap.Result.Rounds,
	})
	if err != nil {
		return fmt.Errorf("failed to encode result payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO election_result
			(id, method, winner, winner_votes, no_winner, ballot_count, inputs_hash, opened_at, closed_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, snap.ID, models.MethodIRV, snap.Result.Winner, snap.Result.Votes, snap.Result.NoWinner,
		len(snap.Ballots), snap.InputsHash, snap.OpenedAt.UTC(), snap.ClosedAt.UTC(), string(body))
	if err != nil {
		return fmt.Errorf("failed to insert result %s: %w", snap.ID, err)
	}

	return nil
}

const selectResult = `
	SELECT id, method, winner, winner_votes, no_winner, ballot_count, inputs_hash, opened_at, closed_at, payload
	FROM election_result
`

// ListResults returns up to limit results, most recently closed first
func (s *Store) ListResults(ctx context.Context, limit int) ([]models.ArchivedResult, error) {
	rows, err := s.db.QueryContext(ctx, selectResult+`
		ORDER BY closed_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := []models.ArchivedResult{}
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// GetResult returns one archived result by election ID
func (s *Store) GetResult(ctx context.Context, id string) (models.ArchivedResult, error) {
	row := s.db.QueryRowContext(ctx, selectResult+`WHERE id = $1`, id)

	res, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ArchivedResult{}, ErrResultNotFound
	}
	return res, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (models.ArchivedResult, error) {
	var res models.ArchivedResult
	var body string
	err := row.Scan(
		&res.ID, &res.Method, &res.Winner, &res.WinnerVotes, &res.NoWinner,
		&res.BallotCount, &res.InputsHash, &res.OpenedAt, &res.ClosedAt, &body,
	)
	if err != nil {
		return models.ArchivedResult{}, fmt.Errorf("failed to scan result: %w", err)
	}

	var p payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return models.ArchivedResult{}, fmt.Errorf("failed to parse result payload: %w", err)
	}
	res.Candidates = p.Candidates
	res.Rounds = p.Rounds

	return res, nil
}
