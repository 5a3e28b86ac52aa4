package core

import "fmt"

// EventType represents the kind of change a workspace observed.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"

	// EventReload signals that a whole collection was re-read from storage
	// after an external writer changed it (last-writer-wins, no merge).
	EventReload EventType = "RELOAD"
)

// Event represents a single observed change.
// ID addresses the subject: "notes/<id>" or "tags/<id>" for record-level
// changes, or the bare storage key ("notes", "tags") for reloads.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and the lifecycle event contract).
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
