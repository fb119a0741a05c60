// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the result archive and reads and writes closed elections.

# Connecting

Open picks the driver from the config:

	conn, err := db.Open(cfg)

SQLite (modernc.org/sqlite) is the default; PostgreSQL uses lib/pq. With
DatabaseType "none" Open returns a nil *sql.DB and archiving is off.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. The single election_result
table keeps one row per closed election, with the candidate roster and the
per-round counts in a JSON payload column.

# Store

	store := db.NewStore(conn)
	err := store.SaveResult(ctx, snap)
	results, err := store.ListResults(ctx, 20)
	res, err := store.GetResult(ctx, id)

GetResult returns ErrResultNotFound for an unknown ID. The archive is
read-only history; a live election is never restored from it.
*/
package db
