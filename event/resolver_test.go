package event

import (
	"errors"
	"testing"
)

func resolve(t *testing.T, descriptor string, opts Options) (string, map[string]any) {
	t.Helper()
	d, err := ParseDescriptor(descriptor)
	if err != nil {
		t.Fatalf("ParseDescriptor(%q) failed: %v", descriptor, err)
	}
	typ, props, err := Resolve(d, opts)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", descriptor, err)
	}
	return typ, props
}

func TestResolveKeyTable(t *testing.T) {
	for name, code := range KeyCodes() {
		typ, props := resolve(t, "keydown."+name, nil)
		if typ != "keydown" {
			t.Errorf("keydown.%s type = %q, want keydown", name, typ)
		}
		if props["key"] != name {
			t.Errorf("keydown.%s key = %v, want %q", name, props["key"], name)
		}
		if props["keyCode"] != code {
			t.Errorf("keydown.%s keyCode = %v, want %d", name, props["keyCode"], code)
		}
	}
}

func TestResolveMouseButtons(t *testing.T) {
	typ, props := resolve(t, "click.right", nil)
	if typ != "contextmenu" {
		t.Errorf("click.right type = %q, want contextmenu", typ)
	}
	if props["button"] != 2 {
		t.Errorf("click.right button = %v, want 2", props["button"])
	}

	typ, props = resolve(t, "click.middle", nil)
	if typ != "mouseup" {
		t.Errorf("click.middle type = %q, want mouseup", typ)
	}
	if props["button"] != 1 {
		t.Errorf("click.middle button = %v, want 1", props["button"])
	}
}

func TestResolveMouseDefaultButton(t *testing.T) {
	typ, props := resolve(t, "click", nil)
	if typ != "click" {
		t.Errorf("click type = %q, want click", typ)
	}
	if props["button"] != 0 {
		t.Errorf("click button = %v, want 0", props["button"])
	}
}

func TestResolveButtonModifierOnlyOnMouseFamily(t *testing.T) {
	// On a keyboard base, "right" is the arrow key, not a mouse button.
	typ, props := resolve(t, "keydown.right", nil)
	if typ != "keydown" {
		t.Errorf("keydown.right type = %q, want keydown", typ)
	}
	if props["keyCode"] != 39 {
		t.Errorf("keydown.right keyCode = %v, want 39", props["keyCode"])
	}
	if _, ok := props["button"]; ok {
		t.Error("keydown.right should not set button")
	}
}

func TestResolveFlagModifiers(t *testing.T) {
	typ, props := resolve(t, "keydown.ctrl.shift.left", nil)
	if typ != "keydown" {
		t.Errorf("type = %q, want keydown", typ)
	}
	if props["ctrlKey"] != true || props["shiftKey"] != true {
		t.Errorf("flags = ctrl:%v shift:%v, want both true", props["ctrlKey"], props["shiftKey"])
	}
	if props["key"] != "left" || props["keyCode"] != 37 {
		t.Errorf("key = %v keyCode = %v, want left/37", props["key"], props["keyCode"])
	}
	if _, ok := props["altKey"]; ok {
		t.Error("altKey should be absent when not declared")
	}
}

func TestResolveFlagOrderAndRepetition(t *testing.T) {
	_, a := resolve(t, "keydown.ctrl.shift.left", nil)
	_, b := resolve(t, "keydown.shift.left.ctrl.ctrl", nil)
	for _, field := range []string{"ctrlKey", "shiftKey", "key", "keyCode"} {
		if a[field] != b[field] {
			t.Errorf("field %s differs across orderings: %v vs %v", field, a[field], b[field])
		}
	}
}

func TestResolveGenericModifiersInert(t *testing.T) {
	typ, props := resolve(t, "click.stop.prevent.capture.self.once.passive", nil)
	if typ != "click" {
		t.Errorf("type = %q, want click", typ)
	}
	// Only the mouse-family default button lands in the bag.
	if len(props) != 1 || props["button"] != 0 {
		t.Errorf("props = %v, want only button:0", props)
	}
}

func TestResolveUnknownTokens(t *testing.T) {
	// Keyboard family: unknown tokens become a literal key, no code.
	_, props := resolve(t, "keydown.k", nil)
	if props["key"] != "k" {
		t.Errorf("keydown.k key = %v, want k", props["key"])
	}
	if _, ok := props["keyCode"]; ok {
		t.Error("keydown.k should not infer a keyCode")
	}

	// Mouse family: unknown tokens are ignored.
	_, props = resolve(t, "click.bogus", nil)
	if _, ok := props["key"]; ok {
		t.Error("click.bogus should not set key")
	}

	// Key-name lookup is exact-case.
	_, props = resolve(t, "keydown.Enter", nil)
	if props["key"] != "Enter" {
		t.Errorf("keydown.Enter key = %v, want literal Enter", props["key"])
	}
	if _, ok := props["keyCode"]; ok {
		t.Error("keydown.Enter must not match the lowercase table entry")
	}
}

func TestResolveOptionsOverridePerField(t *testing.T) {
	// An explicit key wins, but the modifier-derived keyCode persists.
	_, props := resolve(t, "keydown.enter", Options{"key": "up"})
	if props["key"] != "up" {
		t.Errorf("key = %v, want up", props["key"])
	}
	if props["keyCode"] != 13 {
		t.Errorf("keyCode = %v, want inherited 13", props["keyCode"])
	}

	// An explicit keyCode wins over the modifier-derived one.
	_, props = resolve(t, "keydown.enter", Options{"keyCode": 65})
	if props["keyCode"] != 65 {
		t.Errorf("keyCode = %v, want 65", props["keyCode"])
	}
	if props["key"] != "enter" {
		t.Errorf("key = %v, want enter", props["key"])
	}

	// Options can override the mouse button.
	_, props = resolve(t, "click.right", Options{"button": 0})
	if props["button"] != 0 {
		t.Errorf("button = %v, want 0", props["button"])
	}
}

func TestResolveNoInferenceFromOptionsKey(t *testing.T) {
	_, props := resolve(t, "keydown", Options{"key": "enter"})
	if props["key"] != "enter" {
		t.Errorf("key = %v, want enter", props["key"])
	}
	if _, ok := props["keyCode"]; ok {
		t.Error("options-supplied key must not infer a keyCode")
	}

	// No case folding on options values either.
	_, props = resolve(t, "keydown", Options{"key": "ENTER"})
	if props["key"] != "ENTER" {
		t.Errorf("key = %v, want literal ENTER", props["key"])
	}

	_, props = resolve(t, "keydown", Options{"keyCode": 65})
	if props["keyCode"] != 65 {
		t.Errorf("keyCode = %v, want 65", props["keyCode"])
	}
	if _, ok := props["key"]; ok {
		t.Error("keyCode option must not infer a key")
	}
}

func TestResolveCustomFieldsPassThrough(t *testing.T) {
	_, props := resolve(t, "click", Options{"customData": 123, "code": "KeyA"})
	if props["customData"] != 123 {
		t.Errorf("customData = %v, want 123", props["customData"])
	}
	if props["code"] != "KeyA" {
		t.Errorf("code = %v, want KeyA", props["code"])
	}
}

func TestResolveRejectsTargetOption(t *testing.T) {
	d, err := ParseDescriptor("click")
	if err != nil {
		t.Fatalf("ParseDescriptor failed: %v", err)
	}
	_, _, err = Resolve(d, Options{"target": "x"})
	if !errors.Is(err, ErrForbiddenOption) {
		t.Fatalf("expected ErrForbiddenOption, got %v", err)
	}
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		base string
		want Family
	}{
		{"click", MouseFamily},
		{"contextmenu", MouseFamily},
		{"keydown", KeyboardFamily},
		{"keyup", KeyboardFamily},
		{"input", GenericFamily},
		{"made-up", GenericFamily},
	}
	for _, tt := range tests {
		if got := FamilyOf(tt.base); got != tt.want {
			t.Errorf("FamilyOf(%q) = %v, want %v", tt.base, got, tt.want)
		}
	}
}
