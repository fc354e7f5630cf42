// Package config loads service configuration from environment variables and
// the optional lexicon YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Database backends.
const (
	DBNone     = "none"
	DBSQLite   = "sqlite"
	DBPostgres = "postgres"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Env             string
	Port            int
	ShutdownTimeout time.Duration

	// DatabaseBackend selects job history / custom lexicon storage:
	// "none", "sqlite" or "postgres".
	DatabaseBackend string
	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string
	// DatabaseURL is the DSN for the postgres backend.
	DatabaseURL string

	// LexiconPath points at an optional YAML synonym file.
	LexiconPath string

	// ExtractionEnabled allows summarizing by URL.
	ExtractionEnabled bool
	// FetchTimeout bounds a single page fetch.
	FetchTimeout time.Duration
	// FetchMaxBytes caps the fetched page size.
	FetchMaxBytes int64
	// FetchUserAgent is sent with page fetches.
	FetchUserAgent string
	// FetchAllowPrivate permits fetching private/loopback addresses
	// (tests and local development only).
	FetchAllowPrivate bool
}

const (
	defaultEnv             = "development"
	defaultPort            = 5000
	defaultShutdownTimeout = 10 * time.Second

	defaultDatabaseBackend = DBSQLite
	defaultSQLitePath      = "textforge.db"

	defaultLexiconPath = "config/lexicon.yaml"

	defaultFetchTimeout  = 15 * time.Second
	defaultFetchMaxBytes = 5 << 20 // 5 MiB
	defaultUserAgent     = "textforge/1.0 (+https://github.com/textforge/textforge)"
)

// Load reads configuration from the environment, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Env:             getEnv("APP_ENV", defaultEnv),
		Port:            getInt("PORT", defaultPort),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),

		DatabaseBackend: getEnv("DATABASE_BACKEND", defaultDatabaseBackend),
		SQLitePath:      getEnv("SQLITE_PATH", defaultSQLitePath),
		DatabaseURL:     os.Getenv("DATABASE_URL"),

		LexiconPath: getEnv("LEXICON_PATH", defaultLexiconPath),

		ExtractionEnabled: getBool("EXTRACTION_ENABLED", true),
		FetchTimeout:      getDuration("FETCH_TIMEOUT", defaultFetchTimeout),
		FetchMaxBytes:     int64(getInt("FETCH_MAX_BYTES", defaultFetchMaxBytes)),
		FetchUserAgent:    getEnv("FETCH_USER_AGENT", defaultUserAgent),
		FetchAllowPrivate: getBool("FETCH_ALLOW_PRIVATE", false),
	}

	switch cfg.DatabaseBackend {
	case DBNone, DBSQLite:
		// no further requirements
	case DBPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when DATABASE_BACKEND=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unknown DATABASE_BACKEND value: %s", cfg.DatabaseBackend)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
