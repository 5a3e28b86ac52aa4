package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotkit/jot/pkg/adapters/memory"
	"github.com/jotkit/jot/pkg/core"
)

// watchableStore wraps the memory adapter with a hand-driven change feed,
// standing in for an adapter that notices external writes.
type watchableStore struct {
	*memory.Store
	changes chan core.Event
}

func newWatchableStore() *watchableStore {
	return &watchableStore{
		Store:   memory.NewStore(),
		changes: make(chan core.Event, 4),
	}
}

func (s *watchableStore) Watch(ctx context.Context) (<-chan core.Event, error) {
	return s.changes, nil
}

func TestDeleteTagCascade(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	ctx := context.Background()

	tag, err := ws.Tags.Add(ctx, "work", "")
	require.NoError(t, err)
	other, err := ws.Tags.Add(ctx, "home", "")
	require.NoError(t, err)

	tagged := ws.Notes.Add(ctx, "a", "", []string{tag.ID, other.ID})
	untouched := ws.Notes.Add(ctx, "b", "", []string{other.ID})
	prevUpdated := untouched.UpdatedAt

	ws.DeleteTag(ctx, tag.ID)

	_, ok := ws.Tags.Get(tag.ID)
	assert.False(t, ok, "tag record is gone")

	got, ok := ws.Notes.Get(tagged.ID)
	require.True(t, ok)
	assert.Equal(t, []string{other.ID}, got.Tags, "reference stripped, others kept")

	got, ok = ws.Notes.Get(untouched.ID)
	require.True(t, ok)
	assert.True(t, got.UpdatedAt.Equal(prevUpdated), "non-referencing notes untouched")

	_, counted := ws.Notes.TagCounts()[tag.ID]
	assert.False(t, counted, "no dangling references survive the cascade")
}

func TestWatchPatternFiltering(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tagEvents, err := ws.Watch(ctx, "tags/*")
	require.NoError(t, err)
	allEvents, err := ws.Watch(ctx, "")
	require.NoError(t, err)

	note := ws.Notes.Add(ctx, "n", "", nil)
	tag, err := ws.Tags.Add(ctx, "t", "")
	require.NoError(t, err)

	// The scoped subscriber sees only the tag event.
	e := <-tagEvents
	assert.Equal(t, core.EventCreate, e.Type)
	assert.Equal(t, "tags/"+tag.ID, e.ID)
	select {
	case extra := <-tagEvents:
		t.Fatalf("unexpected event on scoped subscription: %v", extra)
	default:
	}

	// The catch-all subscriber sees both, in order.
	e = <-allEvents
	assert.Equal(t, "notes/"+note.ID, e.ID)
	e = <-allEvents
	assert.Equal(t, "tags/"+tag.ID, e.ID)
}

func TestWatchChannelClosesWithContext(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := ws.Watch(ctx, "**")
	require.NoError(t, err)

	cancel()
	select {
	case _, open := <-events:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("subscription channel not closed after cancel")
	}
}

func TestWatchInvalidPattern(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	_, err := ws.Watch(context.Background(), "[unclosed")
	assert.Error(t, err)
}

func TestExternalChangeReloadsCollection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage := newWatchableStore()
	ws := core.NewWorkspace(storage, nil, 0)
	ws.Load(ctx)
	ws.Notes.Add(ctx, "mine", "", nil)

	// Subscribe after the local Add so only bridge traffic arrives.
	events, err := ws.Watch(ctx, "**")
	require.NoError(t, err)

	// Another writer replaces the notes blob wholesale.
	blob := `[{"id":"theirs","title":"external","content":"",` +
		`"tags":[],"isPinned":false,` +
		`"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}]`
	require.NoError(t, storage.Set(ctx, core.KeyNotes, []byte(blob)))
	storage.changes <- core.Event{Type: core.EventModify, ID: core.KeyNotes, Timestamp: time.Now().Unix()}

	select {
	case e := <-events:
		assert.Equal(t, core.EventReload, e.Type)
		assert.Equal(t, core.KeyNotes, e.ID)
	case <-time.After(time.Second):
		t.Fatal("no reload event after external change")
	}

	// Last writer wins: stored state replaced the in-memory collection.
	_, ok := ws.Notes.Get("theirs")
	assert.True(t, ok)
	_, ok = ws.Notes.Get("mine")
	assert.False(t, ok)
}

func TestWorkspaceState(t *testing.T) {
	ws, _ := newTestWorkspace(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ws.Notes.Add(ctx, "n", "", nil)
	_, err := ws.Watch(ctx, "**")
	require.NoError(t, err)

	assert.Equal(t, "workspace", ws.ComponentType())

	state, ok := ws.State().(core.WorkspaceState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Notes)
	assert.Equal(t, 0, state.Tags)
	assert.Equal(t, 1, state.Subscribers)
}
