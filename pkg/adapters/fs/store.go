// Package fs implements core.Storage on top of a local data directory:
// one file per storage key, written atomically, with optional change
// watching for external writers.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// echoWindow is how long after our own Set a filesystem event for the same
// key is treated as an echo of that write rather than an external change.
const echoWindow = time.Second

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string // data directory, one file per key
	Format    string // FormatJSON (default) or FormatYAML
	MustExist bool   // fail Initialize when the directory is missing
	Logger    *slog.Logger
}

// Store is the file-backed implementation of core.Storage.
type Store struct {
	Path   string
	config Config

	mu            sync.Mutex
	lastWrites    map[string]time.Time
	watcherActive bool
}

// NewStore creates a filesystem store. Call Initialize before use.
func NewStore(config Config) *Store {
	if config.Format == "" {
		config.Format = FormatJSON
	}
	return &Store{
		Path:       config.Path,
		config:     config,
		lastWrites: make(map[string]time.Time),
	}
}

// Initialize validates the format and ensures the data directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if !validFormat(s.config.Format) {
		return fmt.Errorf("unknown storage format: %q", s.config.Format)
	}

	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("data directory does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Get reads the blob stored under key. A missing file means the key was
// never written: ok=false, no error.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	raw, err := os.ReadFile(s.filename(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	data, err := decode(s.config.Format, raw)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode key %q: %w", key, err)
	}
	return data, true, nil
}

// Set replaces the blob stored under key, atomically (temp file + rename).
func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	raw, err := encode(s.config.Format, data)
	if err != nil {
		return fmt.Errorf("failed to encode key %q: %w", key, err)
	}

	if err := writeFileAtomic(s.filename(key), raw, 0644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	s.mu.Lock()
	s.lastWrites[key] = time.Now()
	s.mu.Unlock()

	if s.config.Logger != nil {
		s.config.Logger.Debug("blob written", "key", key, "bytes", len(raw))
	}
	return nil
}

// filename maps a key to its file in the data directory.
func (s *Store) filename(key string) string {
	return filepath.Join(s.Path, key+"."+extFor(s.config.Format))
}

// keyFor is the inverse of filename: it recovers the key from a file base
// name, or ok=false when the file is not one of ours.
func (s *Store) keyFor(base string) (string, bool) {
	suffix := "." + extFor(s.config.Format)
	if !strings.HasSuffix(base, suffix) {
		return "", false
	}
	key := strings.TrimSuffix(base, suffix)
	if validateKey(key) != nil {
		return "", false
	}
	return key, true
}

// recentOwnWrite reports whether this store wrote the key within the echo
// window, i.e. the filesystem event is our own Set coming back at us.
func (s *Store) recentOwnWrite(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	last, ok := s.lastWrites[key]
	return ok && time.Since(last) < echoWindow
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

// validateKey rejects keys that would escape the data directory or collide
// with temp files. Keys are short fixed names ("notes", "tags").
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("storage key is empty")
	}
	if strings.ContainsAny(key, `/\.`) {
		return fmt.Errorf("invalid storage key: %q", key)
	}
	return nil
}
