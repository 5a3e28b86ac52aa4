package core

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Workspace wires one NoteStore and one TagStore to a shared storage
// adapter and event broker. It is the explicit replacement for an ambient
// reactive runtime: commands mutate and persist, subscribers observe via
// Watch, and the derived view is always readable from Notes.View().
//
// There is exactly one logical writer per workspace. A second process
// writing the same storage is not coordinated; when the adapter supports
// watching, the workspace reloads on external change (last-writer-wins).
type Workspace struct {
	Notes *NoteStore
	Tags  *TagStore

	storage Storage
	logger  *slog.Logger
	broker  *broker

	watchOnce sync.Once
}

// NewWorkspace creates a workspace on top of the given storage adapter.
// eventBuffer sizes each subscriber's channel; zero or negative selects
// the default.
func NewWorkspace(storage Storage, logger *slog.Logger, eventBuffer int) *Workspace {
	ws := &Workspace{
		storage: storage,
		logger:  logger,
		broker:  newBroker(eventBuffer, logger),
	}
	ws.Notes = newNoteStore(storage, logger, ws.broker.publish)
	ws.Tags = newTagStore(storage, logger, ws.broker.publish)
	return ws
}

// Load reads both collections from storage. Per the store contracts it
// cannot fail: broken storage degrades to empty collections.
func (ws *Workspace) Load(ctx context.Context) {
	ws.Notes.Load(ctx)
	ws.Tags.Load(ctx)
}

// DeleteTag removes a tag and every reference to it: each referencing note
// is stripped of the tag and updated (refreshing its UpdatedAt), then the
// tag itself is deleted. Order matters — references go first, so a crash
// in between leaves at worst an unreferenced tag, never a dangling
// reference.
func (ws *Workspace) DeleteTag(ctx context.Context, id string) {
	for _, n := range ws.Notes.Notes() {
		if !n.HasTag(id) {
			continue
		}
		n.Tags = n.WithoutTag(id)
		ws.Notes.Update(ctx, n)
	}
	ws.Tags.Delete(ctx, id)
}

// Watch subscribes to workspace events. The pattern is a doublestar glob
// matched against Event.ID ("notes/*", "tags/*", "**"; empty means all).
// The returned channel is buffered and closed when ctx is done; a
// subscriber that stops draining loses events instead of blocking writers.
//
// The first Watch call also starts the storage bridge when the adapter is
// Watchable: external modifications reload the affected collection and
// surface as RELOAD events.
func (ws *Workspace) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	ch, err := ws.broker.subscribe(ctx, pattern)
	if err != nil {
		return nil, err
	}

	ws.watchOnce.Do(func() {
		ws.startStorageBridge(ctx)
	})
	return ch, nil
}

// startStorageBridge forwards external-change notifications from the
// storage adapter into store reloads and RELOAD events.
func (ws *Workspace) startStorageBridge(ctx context.Context) {
	w, ok := ws.storage.(Watchable)
	if !ok {
		return
	}

	events, err := w.Watch(ctx)
	if err != nil {
		if ws.logger != nil {
			ws.logger.Warn("storage watch unavailable", "error", err)
		}
		return
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case e, chOpen := <-events:
				if !chOpen {
					return
				}
				ws.reload(ctx, e.ID)
			}
		}
	}()
}

// reload re-reads one collection after an external write. No merging: the
// stored state wins wholesale.
func (ws *Workspace) reload(ctx context.Context, key string) {
	switch key {
	case KeyNotes:
		ws.Notes.Load(ctx)
	case KeyTags:
		ws.Tags.Load(ctx)
	default:
		return
	}

	if ws.logger != nil {
		ws.logger.Info("collection reloaded after external change", "key", key)
	}
	ws.broker.publish(Event{Type: EventReload, ID: key, Timestamp: time.Now().Unix()})
}
