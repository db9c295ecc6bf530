// Package event implements the descriptor resolution engine: it turns a
// dot-delimited descriptor such as "click.right" or "keydown.ctrl.enter"
// into a fully shaped event and dispatches it through capture, target, and
// bubble phases against a dom tree.
package event

// Family classifies a base event name once, so resolution rules never
// re-derive family membership from the string.
type Family int

const (
	// GenericFamily covers every base event name without special semantics.
	GenericFamily Family = iota
	// MouseFamily covers pointer events, where button modifiers apply.
	MouseFamily
	// KeyboardFamily covers key events, where key-name modifiers apply.
	KeyboardFamily
)

var families = map[string]Family{
	"click":       MouseFamily,
	"dblclick":    MouseFamily,
	"mousedown":   MouseFamily,
	"mouseup":     MouseFamily,
	"mousemove":   MouseFamily,
	"mouseover":   MouseFamily,
	"mouseout":    MouseFamily,
	"mouseenter":  MouseFamily,
	"mouseleave":  MouseFamily,
	"contextmenu": MouseFamily,

	"keydown":  KeyboardFamily,
	"keyup":    KeyboardFamily,
	"keypress": KeyboardFamily,
}

// FamilyOf returns the family of a base event name. Unknown names are
// GenericFamily.
func FamilyOf(base string) Family {
	return families[base]
}

// keyCodes maps lowercase key names to their legacy numeric key codes.
// Lookup is exact-case: only the declared spelling matches.
var keyCodes = map[string]int{
	"backspace": 8,
	"tab":       9,
	"enter":     13,
	"esc":       27,
	"escape":    27,
	"space":     32,
	"pageup":    33,
	"pagedown":  34,
	"end":       35,
	"home":      36,
	"left":      37,
	"up":        38,
	"right":     39,
	"down":      40,
	"insert":    45,
	"delete":    46,
}

// KeyCodes returns a copy of the key-name table.
func KeyCodes() map[string]int {
	out := make(map[string]int, len(keyCodes))
	for k, v := range keyCodes {
		out[k] = v
	}
	return out
}

// mouseButton describes the effect of a mouse-button modifier: the button
// value and, when set, the event type that replaces the authored base type.
type mouseButton struct {
	Button       int
	TypeOverride string
}

var mouseButtons = map[string]mouseButton{
	"right":  {Button: 2, TypeOverride: "contextmenu"},
	"middle": {Button: 1, TypeOverride: "mouseup"},
}

// genericModifiers are recognized listener-binding modifiers that have no
// effect on the event object itself.
var genericModifiers = map[string]bool{
	"stop":    true,
	"prevent": true,
	"capture": true,
	"self":    true,
	"once":    true,
	"passive": true,
}

// flagModifiers maps modifier-key tokens to the boolean event field they set.
var flagModifiers = map[string]string{
	"ctrl":  "ctrlKey",
	"shift": "shiftKey",
	"alt":   "altKey",
	"meta":  "metaKey",
}
