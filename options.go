package jot

import (
	"log/slog"

	"github.com/jotkit/jot/pkg/adapters/fs"
	"github.com/jotkit/jot/pkg/core"
)

// options holds the internal configuration for Open.
type options struct {
	storage     core.Storage
	logger      *slog.Logger
	format      string
	mustExist   bool
	forceTemp   bool
	eventBuffer int
}

// Option defines a functional option for configuring a workspace.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		format: fs.FormatJSON,
	}
}

// WithLogger sets the logger for the workspace and its storage adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFormat selects the on-disk representation for the default filesystem
// adapter: fs.FormatJSON (default) or fs.FormatYAML.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithMustExist makes Open fail when the data directory is missing instead
// of creating it.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithForceTemp forces the data directory into a temporary location
// (useful for experiments and tests).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithStorage injects a custom storage adapter (e.g. memory, mock).
// When set, the default filesystem adapter and path resolution are skipped.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithEventBuffer sizes each Watch subscriber's channel. Zero means default.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}
