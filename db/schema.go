// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	// One statement per Exec so both drivers accept it
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Plain types only: the same schema runs on SQLite and PostgreSQL
const schema = `
-- Closed election results
CREATE TABLE IF NOT EXISTS election_result (
    id TEXT PRIMARY KEY,
    method TEXT NOT NULL DEFAULT 'irv',
    winner TEXT NOT NULL,
    winner_votes INTEGER NOT NULL CHECK (winner_votes >= 0),
    no_winner BOOLEAN NOT NULL,
    ballot_count INTEGER NOT NULL,
    inputs_hash TEXT NOT NULL,
    opened_at TIMESTAMP NOT NULL,
    closed_at TIMESTAMP NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_election_result_closed_at ON election_result(closed_at);
`
