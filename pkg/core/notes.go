package core

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NoteStore owns the note collection and its derived view.
//
// Every mutating operation persists the whole collection through the
// Storage adapter and recomputes the derived view before it returns, so a
// caller reading View() right after a command always sees the new state.
// Storage failures are logged and swallowed: the store favors staying
// usable over durability guarantees, and is always in a fully defined
// state even when the medium is broken.
//
// Search term, tag filter and sort option are session-local view state —
// they shape the derived view but are never written to storage.
type NoteStore struct {
	mu      sync.RWMutex
	storage Storage
	logger  *slog.Logger
	publish func(Event)

	notes  []Note
	view   []Note
	search string
	tagID  string
	sort   SortOption
	loaded bool
}

func newNoteStore(storage Storage, logger *slog.Logger, publish func(Event)) *NoteStore {
	if publish == nil {
		publish = func(Event) {}
	}
	return &NoteStore{
		storage: storage,
		logger:  logger,
		publish: publish,
		sort:    DefaultSortOption,
	}
}

// Load reads the persisted collection. An absent or malformed blob yields
// an empty collection — logged, never an error. Records written by older
// versions that predate tags or pinning load with an empty tag set and
// unpinned state.
func (s *NoteStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = s.readAll(ctx)
	s.loaded = true
	s.refreshLocked()
}

// readAll deserializes the blob under KeyNotes, migrating older shapes.
func (s *NoteStore) readAll(ctx context.Context) []Note {
	data, ok, err := s.storage.Get(ctx, KeyNotes)
	if err != nil {
		s.warn("failed to read notes from storage", err)
		return nil
	}
	if !ok {
		return nil
	}

	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.warn("failed to parse stored notes, starting empty", err)
		return nil
	}

	for i := range notes {
		// Forward-compatible defaulting: nil Tags becomes the empty set,
		// and a missing isPinned already decodes to false.
		notes[i].Tags = normalizeTags(notes[i].Tags)
	}
	return notes
}

// Loaded reports whether Load has completed.
func (s *NoteStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Add creates a note and inserts it into the collection. The note starts
// unpinned with CreatedAt == UpdatedAt == now and a freshly minted ID.
func (s *NoteStore) Add(ctx context.Context, title, content string, tags []string) Note {
	now := time.Now().UTC()
	note := Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Tags:      normalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.notes = sortNotes(append([]Note{note}, s.notes...), s.sort)
	s.persistLocked(ctx)
	s.refreshLocked()
	s.mu.Unlock()

	s.publish(Event{Type: EventCreate, ID: KeyNotes + "/" + note.ID, Timestamp: now.Unix()})
	return note.clone()
}

// Update replaces the stored note with the same ID, refreshing UpdatedAt
// and keeping the caller-supplied CreatedAt. Unknown IDs are a no-op.
func (s *NoteStore) Update(ctx context.Context, note Note) {
	s.mu.Lock()
	idx := s.indexLocked(note.ID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	note.Tags = normalizeTags(note.Tags)
	note.UpdatedAt = time.Now().UTC()
	s.notes[idx] = note
	s.notes = sortNotes(s.notes, s.sort)
	s.persistLocked(ctx)
	s.refreshLocked()
	s.mu.Unlock()

	s.publish(Event{Type: EventModify, ID: KeyNotes + "/" + note.ID, Timestamp: note.UpdatedAt.Unix()})
}

// Delete removes the note with the given ID. Unknown IDs are a no-op.
// Removal preserves the relative order of the rest, so no re-sort happens.
func (s *NoteStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	s.persistLocked(ctx)
	s.refreshLocked()
	s.mu.Unlock()

	s.publish(Event{Type: EventDelete, ID: KeyNotes + "/" + id, Timestamp: time.Now().Unix()})
}

// TogglePin flips the pin flag on the note with the given ID. Pin state
// drives the primary ordering, so the collection re-sorts.
func (s *NoteStore) TogglePin(ctx context.Context, id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	now := time.Now().UTC()
	s.notes[idx].IsPinned = !s.notes[idx].IsPinned
	s.notes[idx].UpdatedAt = now
	s.notes = sortNotes(s.notes, s.sort)
	s.persistLocked(ctx)
	s.refreshLocked()
	s.mu.Unlock()

	s.publish(Event{Type: EventModify, ID: KeyNotes + "/" + id, Timestamp: now.Unix()})
}

// Get returns the note with the given ID.
func (s *NoteStore) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return Note{}, false
	}
	return s.notes[idx].clone(), true
}

// SetSortOption changes the ordering of the collection and the derived
// view. View state only; nothing is persisted.
func (s *NoteStore) SetSortOption(option SortOption) {
	if !option.Valid() {
		// Closed enum: anything else is a programming error upstream.
		s.warn("ignoring invalid sort option", ErrInvalidSortOption)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = option
	s.notes = sortNotes(s.notes, s.sort)
	s.refreshLocked()
}

// SetSearchTerm sets the case-insensitive substring filter over title and
// content. Empty clears it. View state only.
func (s *NoteStore) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
	s.refreshLocked()
}

// SetTagFilter restricts the derived view to notes referencing the given
// tag ID. Empty clears the filter. View state only.
func (s *NoteStore) SetTagFilter(tagID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tagID = tagID
	s.refreshLocked()
}

// SortOption returns the current ordering.
func (s *NoteStore) SortOption() SortOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort
}

// SearchTerm returns the current search term.
func (s *NoteStore) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

// TagFilter returns the current tag filter ("" when unset).
func (s *NoteStore) TagFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tagID
}

// Notes returns a copy of the full collection in its current sort order.
func (s *NoteStore) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNotes(s.notes)
}

// View returns the derived view: the collection after tag filter, search
// filter and sort. Recomputed on every change, never persisted.
func (s *NoteStore) View() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNotes(s.view)
}

// TagCounts returns how many notes currently reference each tag ID.
// Tags referenced by no note are absent from the result.
func (s *NoteStore) TagCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, n := range s.notes {
		for _, t := range n.Tags {
			counts[t]++
		}
	}
	return counts
}

// refreshLocked recomputes the derived view: tag filter, then search
// filter, then sort. Caller holds the write lock.
func (s *NoteStore) refreshLocked() {
	result := s.notes

	if s.tagID != "" {
		filtered := make([]Note, 0, len(result))
		for _, n := range result {
			if n.HasTag(s.tagID) {
				filtered = append(filtered, n)
			}
		}
		result = filtered
	}

	if term := strings.TrimSpace(s.search); term != "" {
		term = strings.ToLower(term)
		filtered := make([]Note, 0, len(result))
		for _, n := range result {
			if strings.Contains(strings.ToLower(n.Title), term) ||
				strings.Contains(strings.ToLower(n.Content), term) {
				filtered = append(filtered, n)
			}
		}
		result = filtered
	}

	s.view = sortNotes(result, s.sort)
}

// persistLocked writes the whole collection as one blob. A failed write is
// logged and swallowed; the in-memory state stays authoritative for this
// session. Caller holds the write lock.
func (s *NoteStore) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.notes)
	if err != nil {
		s.warn("failed to serialize notes", err)
		return
	}
	if err := s.storage.Set(ctx, KeyNotes, data); err != nil {
		s.warn("failed to persist notes", err)
	}
}

func (s *NoteStore) indexLocked(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *NoteStore) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, "error", err)
	}
}
