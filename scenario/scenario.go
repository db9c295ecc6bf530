// Package scenario runs declarative trigger scenarios: a YAML document
// names markup to mount and a sequence of trigger steps with expected event
// fields. Scenarios double as contract tests for the resolution engine.
package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one mounted tree and the steps to drive against it.
type Scenario struct {
	Name  string `yaml:"name"`
	HTML  string `yaml:"html"`
	Steps []Step `yaml:"steps"`
}

// Step triggers one descriptor on one node. Expect lists event fields to
// compare against the observed event ("type" compares the event type).
// Handler optionally attaches a scripted listener before the trigger.
// Suppressed asserts that the dispatch guard silenced the event.
type Step struct {
	Find       string         `yaml:"find"`
	Trigger    string         `yaml:"trigger"`
	Options    map[string]any `yaml:"options"`
	Expect     map[string]any `yaml:"expect"`
	Handler    string         `yaml:"handler"`
	Suppressed bool           `yaml:"suppressed"`
}

// Load decodes a scenario from a reader.
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if s.HTML == "" {
		return nil, fmt.Errorf("scenario %q has no html", s.Name)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", s.Name)
	}
	return &s, nil
}

// LoadFile decodes a scenario from a file.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
