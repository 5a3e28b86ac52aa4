package core

import (
	"slices"
	"time"
)

// Note is the central entity of the domain.
// Tags holds references to Tag IDs with set semantics: duplicates collapse
// on every write path, but first-seen order is preserved for display.
// The JSON field names are the persisted wire shape and must not change.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasTag reports whether the note references the given tag ID.
func (n Note) HasTag(tagID string) bool {
	return slices.Contains(n.Tags, tagID)
}

// WithoutTag returns a copy of the note's tag set with the given tag removed.
func (n Note) WithoutTag(tagID string) []string {
	out := make([]string, 0, len(n.Tags))
	for _, t := range n.Tags {
		if t != tagID {
			out = append(out, t)
		}
	}
	return out
}

// clone returns a note whose tag slice does not share memory with the original.
func (n Note) clone() Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}

func cloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.clone()
	}
	return out
}

// normalizeTags collapses duplicates and drops empty IDs, keeping the
// first-seen order. Every write path runs through here so that Tags always
// behaves as a set.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
