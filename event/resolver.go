package event

// Options is the caller-supplied property bag merged over modifier-derived
// fields. It must never contain a "target" entry.
type Options map[string]any

// Resolve computes the final event type and property bag for a descriptor.
//
// Modifier tokens apply in authored order, each through the first matching
// rule: mouse-button modifiers (mouse-family bases only) set button and may
// substitute the event type; key-name modifiers set key to the literal token
// and keyCode from the table; generic listener modifiers are inert; the
// fixed modifier-key set maps to boolean flags; on keyboard-family bases any
// other token becomes a literal key with no code inference; elsewhere it is
// ignored.
//
// Caller options then merge over the bag field-by-field, so an explicit
// option wins on every field it names. A caller "key" without a caller
// "keyCode" deliberately leaves a modifier-derived keyCode intact; keyCode
// inference never happens from an options-supplied key.
func Resolve(d Descriptor, opts Options) (string, map[string]any, error) {
	if _, ok := opts["target"]; ok {
		return "", nil, ErrForbiddenOption
	}

	typ := d.Base
	props := make(map[string]any)
	fam := FamilyOf(d.Base)

	for _, tok := range d.Modifiers {
		mb, isButton := mouseButtons[tok]
		switch {
		case fam == MouseFamily && isButton:
			props["button"] = mb.Button
			if mb.TypeOverride != "" {
				typ = mb.TypeOverride
			}
		case hasKeyCode(tok):
			props["key"] = tok
			props["keyCode"] = keyCodes[tok]
		case genericModifiers[tok]:
			// Listener-binding modifiers never shape the event object.
		case flagModifiers[tok] != "":
			props[flagModifiers[tok]] = true
		case fam == KeyboardFamily:
			props["key"] = tok
		}
	}

	if fam == MouseFamily {
		if _, ok := props["button"]; !ok {
			props["button"] = 0
		}
	}

	for k, v := range opts {
		props[k] = v
	}
	return typ, props, nil
}

func hasKeyCode(tok string) bool {
	_, ok := keyCodes[tok]
	return ok
}
