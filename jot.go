package jot

import (
	"context"

	"github.com/jotkit/jot/pkg/adapters/fs"
	"github.com/jotkit/jot/pkg/core"
)

// Open creates a workspace rooted at the given data directory and loads
// both collections.
//
//	ws, err := jot.Open("~/.jot", jot.WithFormat("yaml"))
//
// Runs under `go run` or `go test` are re-rooted into a temporary
// directory unless WithForceTemp(false) semantics are requested via an
// injected storage — see safety.go.
func Open(path string, opts ...Option) (*core.Workspace, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storage := o.storage
	if storage == nil {
		useTemp := o.forceTemp || IsDevRun()
		resolved := ResolveDataPath(path, useTemp)
		if o.logger != nil && useTemp && resolved != path {
			o.logger.Warn("running in SAFE MODE (dev/test)", "original_path", path, "resolved_path", resolved)
		}

		storage = fs.NewStore(fs.Config{
			Path:      resolved,
			Format:    o.format,
			MustExist: o.mustExist,
			Logger:    o.logger,
		})
	}

	if err := storage.Initialize(context.Background()); err != nil {
		return nil, err
	}

	ws := core.NewWorkspace(storage, o.logger, o.eventBuffer)
	ws.Load(context.Background())
	return ws, nil
}
