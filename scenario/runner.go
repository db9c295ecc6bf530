package scenario

import (
	"fmt"
	"reflect"

	"github.com/domulate/domulate/event"
	"github.com/domulate/domulate/harness"
	"github.com/domulate/domulate/script"
)

// Failure records one unmet expectation.
type Failure struct {
	Step int
	Msg  string
}

func (f Failure) String() string {
	return fmt.Sprintf("step %d: %s", f.Step+1, f.Msg)
}

// Run mounts the scenario and executes its steps in order. It returns the
// collected expectation failures; the error covers setup problems (bad
// markup, missing nodes, bad descriptors, handler compile errors) that stop
// the run.
func Run(s *Scenario) ([]Failure, error) {
	h := harness.New()
	if err := h.Mount(s.HTML); err != nil {
		return nil, fmt.Errorf("mounting %q: %w", s.Name, err)
	}

	var eng *script.Engine
	var failures []Failure

	for i, st := range s.Steps {
		n, err := h.Find(st.Find)
		if err != nil {
			return failures, fmt.Errorf("step %d: %w", i+1, err)
		}

		// The recording listener needs the resolved type: a button
		// modifier may substitute it.
		d, err := event.ParseDescriptor(st.Trigger)
		if err != nil {
			return failures, fmt.Errorf("step %d: %w", i+1, err)
		}
		typ, _, err := event.Resolve(d, st.Options)
		if err != nil {
			return failures, fmt.Errorf("step %d: %w", i+1, err)
		}

		if st.Handler != "" {
			if eng == nil {
				eng = script.NewEngine()
			}
			fn, err := eng.Handler(st.Handler)
			if err != nil {
				return failures, fmt.Errorf("step %d: %w", i+1, err)
			}
			h.On(n, typ, fn, event.WithOnce())
		}

		var got *event.Event
		id := h.On(n, typ, func(ev *event.Event) { got = ev })

		if err := h.Trigger(n, st.Trigger, st.Options); err != nil {
			return failures, fmt.Errorf("step %d: triggering %q: %w", i+1, st.Trigger, err)
		}
		h.Off(n, typ, id)

		if st.Suppressed {
			if got != nil {
				failures = append(failures, Failure{i, fmt.Sprintf("expected %q to be suppressed, but a handler observed it", st.Trigger)})
			}
			continue
		}
		if got == nil {
			failures = append(failures, Failure{i, fmt.Sprintf("no %q event observed on %q", typ, st.Find)})
			continue
		}

		for field, want := range st.Expect {
			var have any
			if field == "type" {
				have = got.Type
			} else {
				have = got.Get(field)
			}
			if !looseEqual(have, want) {
				failures = append(failures, Failure{i, fmt.Sprintf("field %s = %v, want %v", field, have, want)})
			}
		}
	}
	return failures, nil
}

// looseEqual compares across the numeric kinds that YAML decoding and the
// property bag produce.
func looseEqual(a, b any) bool {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
