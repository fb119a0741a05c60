// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres or none (default: sqlite)
  - DatabaseURL: Connection string (default runoff.db for sqlite)
  - CandidateSeparator: Splits the candidate list (default: ",")
  - HistoryLimit: Max archived results listed (default: 20)

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-sep      Candidate list separator
	-history  History limit
	-env      Env file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	CANDIDATE_SEPARATOR → -sep
	HISTORY_LIMIT       → -history

Variables may also come from the env file, loaded with godotenv. Values
already in the environment are never overwritten by the file. CLI flags
take precedence over both.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is not sqlite, postgres or none
  - DATABASE_TYPE is postgres and no URL is given
  - PORT or HISTORY_LIMIT is not a number
*/
package cliparse
