package core

import "context"

// Storage keys. One fixed key per collection; the stores serialize each
// collection as a single blob under its key.
const (
	KeyNotes = "notes"
	KeyTags  = "tags"
)

// Storage defines the contract for the persistence adapter: a synchronous
// key-value store of opaque blobs. Adhering to this interface keeps the
// domain independent of the underlying medium (filesystem, memory, ...).
type Storage interface {
	// Initialize ensures the underlying medium is ready (e.g. create the
	// data directory). Called once before any Get/Set.
	Initialize(ctx context.Context) error

	// Get returns the blob stored under key. ok is false when the key has
	// never been written; that is not an error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set replaces the blob stored under key. By the time Set returns the
	// data is durable (or err says why not).
	Set(ctx context.Context, key string, data []byte) error
}

// Watchable is implemented by storage adapters that can report external
// modifications (another process writing the same keys). Events carry the
// affected key as their ID.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
