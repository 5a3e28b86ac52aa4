package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultEventBuffer is the per-subscriber channel capacity.
const defaultEventBuffer = 64

// broker fans mutation events out to subscribers.
// Publishing never blocks the mutating operation: each subscriber gets a
// buffered channel, and a subscriber that stops draining loses events (the
// drop is counted and logged) rather than stalling the store.
type broker struct {
	mu      sync.Mutex
	subs    map[int]*subscriber
	next    int
	buffer  int
	dropped atomic.Uint64
	logger  *slog.Logger
}

type subscriber struct {
	ch      chan Event
	pattern string
}

func newBroker(buffer int, logger *slog.Logger) *broker {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	return &broker{
		subs:   make(map[int]*subscriber),
		buffer: buffer,
		logger: logger,
	}
}

// subscribe registers a new subscriber whose channel receives every event
// matching the doublestar pattern. The subscription ends when ctx is done;
// the channel is closed at that point.
func (b *broker) subscribe(ctx context.Context, pattern string) (<-chan Event, error) {
	if pattern == "" {
		pattern = "**"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	sub := &subscriber{
		ch:      make(chan Event, b.buffer),
		pattern: pattern,
	}

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = sub
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
		// Closing under the lock: publish also sends under the lock, so no
		// send can race the close.
		close(sub.ch)
	}()

	return sub.ch, nil
}

// publish delivers an event to every matching subscriber without blocking.
func (b *broker) publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		if ok, err := doublestar.Match(sub.pattern, e.ID); err != nil || !ok {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			b.dropped.Add(1)
			if b.logger != nil {
				b.logger.Warn("event dropped: slow subscriber", "event", e.String(), "pattern", sub.pattern)
			}
		}
	}
}

func (b *broker) subscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *broker) droppedCount() uint64 {
	return b.dropped.Load()
}
