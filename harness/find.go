package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domulate/domulate/dom"
)

// ErrNodeNotFound is returned when no element matches a selector.
var ErrNodeNotFound = errors.New("no node matches selector")

// ErrBadSelector is returned for selector syntax outside the supported
// forms.
var ErrBadSelector = errors.New("unsupported selector")

// Find returns the first element in document order matching the selector.
// Supported forms: "tag", "#id", ".class", "[attr]", "[attr=value]", and a
// tag combined with one qualifier ("button#save", "div.active",
// "input[disabled]"). Anything richer belongs to a real selector engine and
// is out of scope here.
func (h *Harness) Find(selector string) (*dom.Node, error) {
	if h.doc == nil {
		return nil, ErrNoTree
	}
	match, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	if n := h.doc.FindElement(match); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, selector)
}

func compileSelector(selector string) (func(*dom.Node) bool, error) {
	s := strings.TrimSpace(selector)
	if s == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrBadSelector)
	}

	// Split an optional tag prefix from one qualifier.
	tag := s
	qualifier := ""
	if i := strings.IndexAny(s, "#.["); i >= 0 {
		tag = s[:i]
		qualifier = s[i:]
	}

	if qualifier == "" {
		return func(n *dom.Node) bool { return n.TagName() == tag }, nil
	}

	var qmatch func(*dom.Node) bool
	switch qualifier[0] {
	case '#':
		id := qualifier[1:]
		if id == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadSelector, selector)
		}
		qmatch = func(n *dom.Node) bool { return n.ID() == id }
	case '.':
		class := qualifier[1:]
		if class == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadSelector, selector)
		}
		qmatch = func(n *dom.Node) bool { return n.HasClass(class) }
	case '[':
		if !strings.HasSuffix(qualifier, "]") {
			return nil, fmt.Errorf("%w: %q", ErrBadSelector, selector)
		}
		body := qualifier[1 : len(qualifier)-1]
		if body == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadSelector, selector)
		}
		if key, value, ok := strings.Cut(body, "="); ok {
			value = strings.Trim(value, `"'`)
			qmatch = func(n *dom.Node) bool {
				return n.HasAttribute(key) && n.GetAttribute(key) == value
			}
		} else {
			qmatch = func(n *dom.Node) bool { return n.HasAttribute(body) }
		}
	}

	if tag == "" {
		return qmatch, nil
	}
	return func(n *dom.Node) bool { return n.TagName() == tag && qmatch(n) }, nil
}
