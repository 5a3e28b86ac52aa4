// Package config resolves the CLI's environment configuration.
// None of this reaches the core: the stores know nothing about
// environment variables, per their external-interface contract.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the CLI-level settings.
type Config struct {
	// DataDir is the directory holding the note and tag files.
	DataDir string
	// Format is the on-disk representation ("json" or "yaml").
	Format string
	// LogLevel is the minimum slog level for CLI output.
	LogLevel slog.Level
}

// Load reads configuration from a .env file (when present) and the
// process environment:
//
//	JOT_DIR        data directory (default: ~/.jot, falling back to ./jot-data)
//	JOT_FORMAT     json | yaml   (default: json)
//	JOT_LOG_LEVEL  debug | info | warn | error (default: warn)
func Load(logger *slog.Logger) *Config {
	if err := godotenv.Load(); err != nil && logger != nil {
		logger.Debug(".env file not found, using environment variables")
	}

	return &Config{
		DataDir:  getEnv("JOT_DIR", defaultDataDir()),
		Format:   getEnv("JOT_FORMAT", "json"),
		LogLevel: parseLevel(getEnv("JOT_LOG_LEVEL", "warn")),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "jot-data"
	}
	return filepath.Join(home, ".jot")
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
