package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv makes the key truly absent.
	for _, key := range []string{"JOT_DIR", "JOT_FORMAT", "JOT_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load(nil)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.True(t,
		strings.HasSuffix(cfg.DataDir, ".jot") || cfg.DataDir == "jot-data",
		"unexpected default data dir: %s", cfg.DataDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv("JOT_DIR", dir)
	t.Setenv("JOT_FORMAT", "yaml")
	t.Setenv("JOT_LOG_LEVEL", "debug")

	cfg := Load(nil)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"nonsense", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "parseLevel(%q)", tt.in)
	}
}
