package core

import (
	"github.com/aretw0/introspection"
)

// WorkspaceState exposes internal state for observability.
type WorkspaceState struct {
	Notes         int    `json:"notes"`
	Tags          int    `json:"tags"`
	Subscribers   int    `json:"subscribers"`
	DroppedEvents uint64 `json:"dropped_events"`
	StorageType   string `json:"storage_type"`
}

// State implements introspection.Introspectable.
func (ws *Workspace) State() any {
	storageType := "storage"
	if comp, ok := ws.storage.(introspection.Component); ok {
		storageType = comp.ComponentType()
	}

	return WorkspaceState{
		Notes:         len(ws.Notes.Notes()),
		Tags:          len(ws.Tags.Tags()),
		Subscribers:   ws.broker.subscriberCount(),
		DroppedEvents: ws.broker.droppedCount(),
		StorageType:   storageType,
	}
}

// ComponentType implements introspection.Component.
func (ws *Workspace) ComponentType() string {
	return "workspace"
}

var _ introspection.Introspectable = (*Workspace)(nil)
var _ introspection.Component = (*Workspace)(nil)
