// Package harness is the caller-facing surface of the engine: it mounts
// markup, finds nodes, triggers descriptor-described events at them, and
// waits for the reactive update queue to settle.
package harness

import (
	"errors"
	"fmt"
	"sync"
)

// ErrSettleTimeout is returned when the update queue keeps producing work
// past the settle-round bound.
var ErrSettleTimeout = errors.New("settle timed out: update queue did not drain")

// Flusher is the settlement primitive: something that holds pending reactive
// work and can run one batch of it. Hosts with their own scheduling (fake
// clocks, virtualized time) substitute their own implementation; nothing in
// the harness touches wall-clock timers.
type Flusher interface {
	// Flush runs the currently pending batch of work. Work enqueued while
	// the batch runs is left for the next round.
	Flush() error
	// Pending reports whether any work is queued.
	Pending() bool
}

// Loop is the default Flusher: a single in-process queue of update
// callbacks, drained one batch per round.
type Loop struct {
	mu    sync.Mutex
	tasks []func()
}

// NewLoop creates an empty update queue.
func NewLoop() *Loop {
	return &Loop{}
}

// Enqueue adds a callback to the pending batch.
func (l *Loop) Enqueue(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append(l.tasks, fn)
}

// Pending reports whether any callbacks are queued.
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks) > 0
}

// Flush runs the snapshot of currently queued callbacks. Callbacks enqueued
// during the batch run in a later round. A panicking callback surfaces as an
// error; the rest of the batch is skipped.
func (l *Loop) Flush() (err error) {
	l.mu.Lock()
	batch := l.tasks
	l.tasks = nil
	l.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("update panicked: %v", p)
		}
	}()
	for _, fn := range batch {
		fn()
	}
	return nil
}

// Clear drops all pending callbacks.
func (l *Loop) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = nil
}
