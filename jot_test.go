package jot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotkit/jot"
	"github.com/jotkit/jot/pkg/adapters/memory"
)

func TestOpenWithFilesystemStorage(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	ws, err := jot.Open(dir)
	require.NoError(t, err)

	note := ws.Notes.Add(ctx, "first", "body", nil)
	_, err = os.Stat(filepath.Join(dir, "notes.json"))
	require.NoError(t, err, "notes file written on Add")

	reopened, err := jot.Open(dir)
	require.NoError(t, err)
	got, ok := reopened.Notes.Get(note.ID)
	require.True(t, ok)
	assert.Equal(t, "first", got.Title)
}

func TestOpenWithYAMLFormat(t *testing.T) {
	dir := t.TempDir()

	ws, err := jot.Open(dir, jot.WithFormat("yaml"))
	require.NoError(t, err)
	ws.Notes.Add(context.Background(), "n", "", nil)

	_, err = os.Stat(filepath.Join(dir, "notes.yaml"))
	assert.NoError(t, err)
}

func TestOpenWithMustExist(t *testing.T) {
	_, err := jot.Open(filepath.Join(t.TempDir(), "absent"), jot.WithMustExist(true))
	assert.Error(t, err)
}

func TestOpenWithInjectedStorage(t *testing.T) {
	storage := memory.NewStore()

	ws, err := jot.Open("ignored-path", jot.WithStorage(storage))
	require.NoError(t, err)

	ws.Notes.Add(context.Background(), "in memory", "", nil)
	assert.Equal(t, 1, storage.Len())
}

func TestOpenRejectsUnknownFormat(t *testing.T) {
	_, err := jot.Open(t.TempDir(), jot.WithFormat("toml"))
	assert.Error(t, err)
}
