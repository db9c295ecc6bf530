package event

import "github.com/domulate/domulate/dom"

// suppressedTags is the closed set of interactive form controls for which a
// disabled attribute blocks dispatch, mirroring native browser behavior. A
// disabled attribute on any other tag has no special meaning.
var suppressedTags = map[string]bool{
	"button":   true,
	"fieldset": true,
	"optgroup": true,
	"option":   true,
	"select":   true,
	"textarea": true,
	"input":    true,
}

// ShouldDispatch reports whether the target node may receive events. A nil
// target never dispatches; a disabled form control silently swallows the
// event.
func ShouldDispatch(n *dom.Node) bool {
	if n == nil {
		return false
	}
	if n.Type != dom.ElementNode {
		return true
	}
	return !(suppressedTags[n.TagName()] && n.HasAttribute("disabled"))
}
