package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TagStore owns the tag collection, kept in insertion order.
//
// The one validation the store enforces itself is name uniqueness
// (case-insensitive), because it is a cross-record invariant no single
// input form can guarantee. Everything else follows the NoteStore
// contract: whole-collection persistence on every mutation, storage
// failures logged and swallowed, unknown-ID mutations as no-ops.
//
// Deleting a tag does NOT touch notes that reference it. The cascade
// belongs to the caller (see Workspace.DeleteTag), keeping the two stores
// decoupled.
type TagStore struct {
	mu      sync.RWMutex
	storage Storage
	logger  *slog.Logger
	publish func(Event)

	tags   []Tag
	loaded bool
}

func newTagStore(storage Storage, logger *slog.Logger, publish func(Event)) *TagStore {
	if publish == nil {
		publish = func(Event) {}
	}
	return &TagStore{
		storage: storage,
		logger:  logger,
		publish: publish,
	}
}

// Load reads the persisted collection. Same resilience contract as
// NoteStore.Load: absent or malformed storage yields an empty collection,
// never an error.
func (s *TagStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tags = nil
	data, ok, err := s.storage.Get(ctx, KeyTags)
	if err != nil {
		s.warn("failed to read tags from storage", err)
	} else if ok {
		if err := json.Unmarshal(data, &s.tags); err != nil {
			s.warn("failed to parse stored tags, starting empty", err)
			s.tags = nil
		}
	}
	s.loaded = true
}

// Loaded reports whether Load has completed.
func (s *TagStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Add creates a tag with a fresh ID and appends it to the collection.
// Fails with ErrDuplicateName when any existing tag has the same name
// under case-insensitive comparison.
func (s *TagStore) Add(ctx context.Context, name, color string) (Tag, error) {
	s.mu.Lock()
	for _, t := range s.tags {
		if sameName(t.Name, name) {
			s.mu.Unlock()
			return Tag{}, fmt.Errorf("add tag %q: %w", name, ErrDuplicateName)
		}
	}

	tag := Tag{ID: uuid.NewString(), Name: name, Color: color}
	s.tags = append(s.tags, tag)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(Event{Type: EventCreate, ID: KeyTags + "/" + tag.ID, Timestamp: time.Now().Unix()})
	return tag, nil
}

// Update replaces the stored tag with the same ID. Fails with
// ErrDuplicateName when a different tag already has the new name.
// An unknown ID is a no-op returning nil.
func (s *TagStore) Update(ctx context.Context, tag Tag) error {
	s.mu.Lock()
	for _, t := range s.tags {
		if t.ID != tag.ID && sameName(t.Name, tag.Name) {
			s.mu.Unlock()
			return fmt.Errorf("update tag %q: %w", tag.Name, ErrDuplicateName)
		}
	}

	replaced := false
	for i := range s.tags {
		if s.tags[i].ID == tag.ID {
			s.tags[i] = tag
			replaced = true
			break
		}
	}
	if !replaced {
		s.mu.Unlock()
		return nil
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(Event{Type: EventModify, ID: KeyTags + "/" + tag.ID, Timestamp: time.Now().Unix()})
	return nil
}

// Delete removes the tag with the given ID. Unknown IDs are a no-op.
func (s *TagStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	idx := -1
	for i := range s.tags {
		if s.tags[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	s.tags = append(s.tags[:idx], s.tags[idx+1:]...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(Event{Type: EventDelete, ID: KeyTags + "/" + id, Timestamp: time.Now().Unix()})
}

// Get returns the tag with the given ID.
func (s *TagStore) Get(id string) (Tag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tags {
		if t.ID == id {
			return t, true
		}
	}
	return Tag{}, false
}

// GetByIDs returns the tags matching the given IDs, in collection order.
// Absent IDs are silently omitted, not an error.
func (s *TagStore) GetByIDs(ids []string) []Tag {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Tag, 0, len(ids))
	for _, t := range s.tags {
		if _, ok := want[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Tags returns a copy of the collection in insertion order.
func (s *TagStore) Tags() []Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

func (s *TagStore) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.tags)
	if err != nil {
		s.warn("failed to serialize tags", err)
		return
	}
	if err := s.storage.Set(ctx, KeyTags, data); err != nil {
		s.warn("failed to persist tags", err)
	}
}

func (s *TagStore) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, "error", err)
	}
}
