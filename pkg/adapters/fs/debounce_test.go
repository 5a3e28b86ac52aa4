package fs

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotkit/jot/pkg/core"
)

func TestDebouncerCollapsesRepeats(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)
	defer d.stop()

	var fired atomic.Int32
	e := core.Event{Type: core.EventModify, ID: "notes"}
	for i := 0; i < 10; i++ {
		d.add(e, func(core.Event) { fired.Add(1) })
	}

	require.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)
	defer d.stop()

	var fired atomic.Int32
	d.add(core.Event{Type: core.EventModify, ID: "notes"}, func(core.Event) { fired.Add(1) })
	d.add(core.Event{Type: core.EventModify, ID: "tags"}, func(core.Event) { fired.Add(1) })

	require.Eventually(t, func() bool {
		return fired.Load() == 2
	}, time.Second, 10*time.Millisecond)
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)

	var fired atomic.Int32
	d.add(core.Event{Type: core.EventModify, ID: "notes"}, func(core.Event) { fired.Add(1) })
	d.stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
