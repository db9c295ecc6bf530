// Package script lets event handlers be written as JavaScript snippets,
// executed on the goja engine. A snippet sees the dispatched event as
// `event` and a persistent `state` object; field mutations it makes on the
// event are written back to the Go property bag, so later listeners and
// test assertions observe them.
package script

import (
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"github.com/domulate/domulate/event"
)

// reserved names the engine sets on the event object itself; they are never
// synced back into the property bag.
var reserved = map[string]bool{
	"type":                     true,
	"preventDefault":           true,
	"stopPropagation":          true,
	"stopImmediatePropagation": true,
}

// Engine wraps a goja runtime shared by the handlers it compiles.
type Engine struct {
	mu   sync.Mutex
	vm   *goja.Runtime
	errs []error
}

// NewEngine creates an engine with an empty persistent state object.
func NewEngine() *Engine {
	vm := goja.New()
	vm.Set("state", vm.NewObject())
	return &Engine{vm: vm}
}

// Execute runs JavaScript source and returns the result. Panics inside the
// engine surface as errors.
func (e *Engine) Execute(code string) (result goja.Value, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.run(code)
}

func (e *Engine) run(code string) (result goja.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
		}
	}()
	return e.vm.RunString(code)
}

// Get returns a global from the runtime, for assertions on script state.
func (e *Engine) Get(name string) goja.Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vm.Get(name)
}

// Errors returns errors raised by handler invocations so far.
func (e *Engine) Errors() []error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]error(nil), e.errs...)
}

// Handler compiles a snippet into an event listener. The snippet body runs
// once per invocation with `event` in scope.
func (e *Engine) Handler(src string) (event.Listener, error) {
	e.mu.Lock()
	fnVal, err := e.run("(function(event) {\n" + src + "\n})")
	e.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("compiling handler: %w", err)
	}
	fn, ok := goja.AssertFunction(fnVal)
	if !ok {
		return nil, fmt.Errorf("compiling handler: not a function")
	}

	return func(ev *event.Event) {
		e.mu.Lock()
		defer e.mu.Unlock()

		obj := e.bindEvent(ev)
		if _, err := func() (v goja.Value, err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("handler panic: %v", p)
				}
			}()
			return fn(goja.Undefined(), obj)
		}(); err != nil {
			e.errs = append(e.errs, err)
			return
		}
		e.syncBack(ev, obj)
	}, nil
}

// bindEvent exposes an event to the runtime: its type, every bag field, and
// the propagation-control methods.
func (e *Engine) bindEvent(ev *event.Event) *goja.Object {
	obj := e.vm.NewObject()
	obj.Set("type", ev.Type)
	for k, v := range ev.Props {
		obj.Set(k, v)
	}
	obj.Set("preventDefault", func(goja.FunctionCall) goja.Value {
		ev.PreventDefault()
		return goja.Undefined()
	})
	obj.Set("stopPropagation", func(goja.FunctionCall) goja.Value {
		ev.StopPropagation()
		return goja.Undefined()
	})
	obj.Set("stopImmediatePropagation", func(goja.FunctionCall) goja.Value {
		ev.StopImmediatePropagation()
		return goja.Undefined()
	})
	return obj
}

// syncBack copies non-reserved fields from the script's event object into
// the Go property bag.
func (e *Engine) syncBack(ev *event.Event, obj *goja.Object) {
	for _, k := range obj.Keys() {
		if reserved[k] {
			continue
		}
		ev.Props[k] = obj.Get(k).Export()
	}
}
