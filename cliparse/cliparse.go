// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseNone     = "none"
)

const (
	DefaultPort         = 3318
	DefaultSQLitePath   = "runoff.db"
	DefaultSeparator    = ","
	DefaultHistoryLimit = 20
)

type Config struct {
	Port               int
	DatabaseURL        string
	DatabaseType       string
	CandidateSeparator string
	HistoryLimit       int
}

// ParseFlags reads flags, then .env and environment variables for anything unset
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("runoff", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or none)")
	flags.StringVar(&cfg.CandidateSeparator, "sep", "", "Separator for the candidate list")
	flags.IntVar(&cfg.HistoryLimit, "history", 0, "Max archived results returned")
	envFile := flags.String("env", ".env", "Env file to load (missing file is ignored)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the file
	if err := loadEnvFile(*envFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		port, err := intFromEnv("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseNone:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case DatabaseSQLite:
			cfg.DatabaseURL = DefaultSQLitePath
		case DatabasePostgres:
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	if cfg.CandidateSeparator == "" {
		cfg.CandidateSeparator = os.Getenv("CANDIDATE_SEPARATOR")
		if cfg.CandidateSeparator == "" {
			cfg.CandidateSeparator = DefaultSeparator
		}
	}

	if cfg.HistoryLimit == 0 {
		limit, err := intFromEnv("HISTORY_LIMIT", DefaultHistoryLimit)
		if err != nil {
			return Config{}, err
		}
		cfg.HistoryLimit = limit
	}
	if cfg.HistoryLimit <= 0 {
		return Config{}, errors.New("history limit must be positive")
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func intFromEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
