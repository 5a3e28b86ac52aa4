package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	Format        string `json:"format"`
	WatcherActive bool   `json:"watcher_active"`
	KeysWritten   int    `json:"keys_written"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return StoreState{
		Path:          s.Path,
		Format:        s.config.Format,
		WatcherActive: s.watcherActive,
		KeysWritten:   len(s.lastWrites),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
