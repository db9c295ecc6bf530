package harness

import (
	"errors"

	"github.com/domulate/domulate/dom"
	"github.com/domulate/domulate/event"
)

// DefaultSettleRounds bounds how many flush rounds a single trigger may
// take before settlement is declared stuck.
const DefaultSettleRounds = 100

// ErrNoTree is returned when a tree-dependent call happens before Mount.
var ErrNoTree = errors.New("no tree mounted")

// Harness mounts a document tree and drives events against it.
type Harness struct {
	doc    *dom.Node
	binder *event.Binder
	loop   *Loop
	flush  Flusher
	rounds int
}

// Option configures a Harness.
type Option func(*Harness)

// WithFlusher substitutes the settlement primitive. Use it when the host
// owns its own pending-update queue.
func WithFlusher(f Flusher) Option {
	return func(h *Harness) { h.flush = f }
}

// WithSettleRounds bounds the flush rounds per trigger.
func WithSettleRounds(n int) Option {
	return func(h *Harness) { h.rounds = n }
}

// New creates a Harness with an internal update queue.
func New(opts ...Option) *Harness {
	h := &Harness{
		binder: event.NewBinder(),
		loop:   NewLoop(),
		rounds: DefaultSettleRounds,
	}
	h.flush = h.loop
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mount parses markup and makes it the current tree. Mount is a remount:
// listeners registered on a previous tree are dropped.
func (h *Harness) Mount(markup string) error {
	doc, err := dom.Parse(markup)
	if err != nil {
		return err
	}
	h.binder.Clear()
	h.loop.Clear()
	h.doc = doc
	return nil
}

// Document returns the current tree's document node, or nil before Mount.
func (h *Harness) Document() *dom.Node {
	return h.doc
}

// Enqueue schedules reactive work to run during settlement. Handlers use it
// for the state mutations an event triggers.
func (h *Harness) Enqueue(fn func()) {
	h.loop.Enqueue(fn)
}

// On registers a listener on a node.
func (h *Harness) On(n *dom.Node, eventType string, fn event.Listener, opts ...event.ListenOption) int {
	return h.binder.On(n, eventType, fn, opts...)
}

// Off removes a listener registered with On.
func (h *Harness) Off(n *dom.Node, eventType string, id int) {
	h.binder.Off(n, eventType, id)
}

// Trigger resolves the descriptor against the caller options, dispatches
// the shaped event at the node, and blocks until the update queue settles.
// Returning nil is the completion signal.
//
// A disabled form control swallows the event: Trigger returns nil and no
// handler runs. Resolution errors (malformed descriptor, a target entry in
// options) surface before any handler can run.
func (h *Harness) Trigger(n *dom.Node, descriptor string, opts event.Options) error {
	d, err := event.ParseDescriptor(descriptor)
	if err != nil {
		return err
	}
	typ, props, err := event.Resolve(d, opts)
	if err != nil {
		return err
	}
	if !event.ShouldDispatch(n) {
		return nil
	}
	h.binder.Dispatch(n, event.NewEvent(typ, props))
	return h.settle()
}

// TriggerSelector finds the first node matching the selector and triggers
// the descriptor on it.
func (h *Harness) TriggerSelector(selector, descriptor string, opts event.Options) error {
	n, err := h.Find(selector)
	if err != nil {
		return err
	}
	return h.Trigger(n, descriptor, opts)
}

// settle drains the flush primitive round by round until no work is
// pending, within the configured round bound.
func (h *Harness) settle() error {
	for i := 0; i < h.rounds; i++ {
		if !h.flush.Pending() {
			return nil
		}
		if err := h.flush.Flush(); err != nil {
			return err
		}
	}
	if h.flush.Pending() {
		return ErrSettleTimeout
	}
	return nil
}
