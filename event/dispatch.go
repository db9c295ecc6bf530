package event

import (
	"sync"

	"github.com/domulate/domulate/dom"
)

// listenerOptions represents listener registration options.
type listenerOptions struct {
	capture bool
	once    bool
}

// ListenOption configures a listener registration.
type ListenOption func(*listenerOptions)

// WithCapture registers the listener for the capture phase.
func WithCapture() ListenOption {
	return func(o *listenerOptions) { o.capture = true }
}

// WithOnce removes the listener after its first invocation.
func WithOnce() ListenOption {
	return func(o *listenerOptions) { o.once = true }
}

// registeredListener is a single registered callback.
type registeredListener struct {
	id      int
	fn      Listener
	options listenerOptions
}

// target holds the listeners registered on one node.
type target struct {
	listeners map[string][]registeredListener
}

// Binder keeps per-node listener registries and dispatches events along the
// capture, at-target, and bubble phases of a node's ancestor path.
type Binder struct {
	mu      sync.RWMutex
	targets map[*dom.Node]*target
	nextID  int
}

// NewBinder creates an empty Binder.
func NewBinder() *Binder {
	return &Binder{
		targets: make(map[*dom.Node]*target),
	}
}

// On registers a listener for an event type on a node and returns an id
// usable with Off.
func (b *Binder) On(n *dom.Node, eventType string, fn Listener, opts ...ListenOption) int {
	var o listenerOptions
	for _, opt := range opts {
		opt(&o)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tg, ok := b.targets[n]
	if !ok {
		tg = &target{listeners: make(map[string][]registeredListener)}
		b.targets[n] = tg
	}
	b.nextID++
	tg.listeners[eventType] = append(tg.listeners[eventType], registeredListener{
		id:      b.nextID,
		fn:      fn,
		options: o,
	})
	return b.nextID
}

// Off removes a previously registered listener by id.
func (b *Binder) Off(n *dom.Node, eventType string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tg, ok := b.targets[n]
	if !ok {
		return
	}
	listeners := tg.listeners[eventType]
	for i, l := range listeners {
		if l.id == id {
			tg.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// HasListeners returns true if any listener is registered on the node for
// the event type.
func (b *Binder) HasListeners(n *dom.Node, eventType string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	tg, ok := b.targets[n]
	return ok && len(tg.listeners[eventType]) > 0
}

// Clear drops every registration.
func (b *Binder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.targets = make(map[*dom.Node]*target)
}

// Dispatch fires the event at the node: ancestors top-down in the capture
// phase, the node itself at target, then ancestors bottom-up in the bubble
// phase when the event bubbles. It returns true unless a listener prevented
// the default action.
func (b *Binder) Dispatch(n *dom.Node, ev *Event) bool {
	ev.Target = n

	// Ancestor path, outermost first.
	var path []*dom.Node
	for p := n.Parent; p != nil; p = p.Parent {
		path = append([]*dom.Node{p}, path...)
	}

	for _, a := range path {
		b.invoke(a, ev, PhaseCapturing)
		if ev.stopped {
			return !ev.DefaultPrevented
		}
	}

	b.invoke(n, ev, PhaseAtTarget)
	if ev.stopped || !ev.Bubbles {
		return !ev.DefaultPrevented
	}

	for i := len(path) - 1; i >= 0; i-- {
		b.invoke(path[i], ev, PhaseBubbling)
		if ev.stopped {
			break
		}
	}
	return !ev.DefaultPrevented
}

// invoke runs the node's listeners for the event's type in one phase.
func (b *Binder) invoke(n *dom.Node, ev *Event, phase Phase) {
	b.mu.RLock()
	tg, ok := b.targets[n]
	if !ok {
		b.mu.RUnlock()
		return
	}
	listeners := make([]registeredListener, len(tg.listeners[ev.Type]))
	copy(listeners, tg.listeners[ev.Type])
	b.mu.RUnlock()

	ev.CurrentTarget = n
	ev.Phase = phase

	var toRemove []int
	for _, l := range listeners {
		if phase == PhaseCapturing && !l.options.capture {
			continue
		}
		if phase == PhaseBubbling && l.options.capture {
			continue
		}

		l.fn(ev)

		if l.options.once {
			toRemove = append(toRemove, l.id)
		}
		if ev.stoppedNow {
			ev.stoppedNow = false
			break
		}
	}

	for _, id := range toRemove {
		b.Off(n, ev.Type, id)
	}
}
