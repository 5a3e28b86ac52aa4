// Package lifecycle bridges jot workspace events into the generic
// aretw0/lifecycle event runtime, so an application managed by lifecycle
// can consume note/tag changes like any other event source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/jotkit/jot/pkg/core"
)

type jotSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource wraps a workspace event channel (from Workspace.Watch) as a
// lifecycle.Source.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &jotSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *jotSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *jotSource) Start(ctx context.Context) error {
	// core.Event satisfies lifecycle.Event through its String method.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
