package event

import "github.com/domulate/domulate/dom"

// Phase represents the phase of event dispatch.
type Phase int

const (
	PhaseNone      Phase = 0
	PhaseCapturing Phase = 1
	PhaseAtTarget  Phase = 2
	PhaseBubbling  Phase = 3
)

// Listener is a callback invoked during dispatch.
type Listener func(*Event)

// Event is a dispatched event: its type, a flat property bag, and
// propagation state. A fresh Event is built for every dispatch; instances
// are never reused.
type Event struct {
	Type  string
	Props map[string]any

	Bubbles    bool
	Cancelable bool

	Target        *dom.Node
	CurrentTarget *dom.Node
	Phase         Phase

	DefaultPrevented bool
	stopped          bool
	stoppedNow       bool
}

// NewEvent creates a bubbling, cancelable event of the given type carrying
// the given property bag.
func NewEvent(typ string, props map[string]any) *Event {
	if props == nil {
		props = make(map[string]any)
	}
	return &Event{
		Type:       typ,
		Props:      props,
		Bubbles:    true,
		Cancelable: true,
	}
}

// Get returns a property from the bag, or nil.
func (e *Event) Get(name string) any {
	return e.Props[name]
}

// Key returns the key property, or empty string.
func (e *Event) Key() string { return stringProp(e.Props, "key") }

// Code returns the code property, or empty string.
func (e *Event) Code() string { return stringProp(e.Props, "code") }

// KeyCode returns the keyCode property, or 0.
func (e *Event) KeyCode() int { return intProp(e.Props, "keyCode") }

// Button returns the button property, or 0.
func (e *Event) Button() int { return intProp(e.Props, "button") }

// CtrlKey reports the ctrlKey flag.
func (e *Event) CtrlKey() bool { return boolProp(e.Props, "ctrlKey") }

// ShiftKey reports the shiftKey flag.
func (e *Event) ShiftKey() bool { return boolProp(e.Props, "shiftKey") }

// AltKey reports the altKey flag.
func (e *Event) AltKey() bool { return boolProp(e.Props, "altKey") }

// MetaKey reports the metaKey flag.
func (e *Event) MetaKey() bool { return boolProp(e.Props, "metaKey") }

// PreventDefault marks the event's default action as prevented, if the
// event is cancelable.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.DefaultPrevented = true
	}
}

// StopPropagation stops the event from reaching further nodes in the
// propagation path. Remaining listeners on the current node still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// StopImmediatePropagation stops propagation and skips the remaining
// listeners on the current node.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stoppedNow = true
}

func stringProp(props map[string]any, name string) string {
	if s, ok := props[name].(string); ok {
		return s
	}
	return ""
}

func boolProp(props map[string]any, name string) bool {
	if b, ok := props[name].(bool); ok {
		return b
	}
	return false
}

// intProp tolerates the numeric kinds that reach the bag from Go literals,
// YAML decoding, and script exports.
func intProp(props map[string]any, name string) int {
	switch v := props[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
