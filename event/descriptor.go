package event

import "strings"

// Descriptor is a parsed event descriptor: the base event name and its
// modifier tokens in authored order. Tokens are not validated here; the
// resolver classifies them.
type Descriptor struct {
	Base      string
	Modifiers []string
}

// ParseDescriptor splits a descriptor string on ".". The first segment is
// the base event name, case-preserved; the rest are modifier tokens,
// order-preserving, duplicates permitted. Only the empty string fails.
func ParseDescriptor(s string) (Descriptor, error) {
	if s == "" {
		return Descriptor{}, ErrMalformedDescriptor
	}
	parts := strings.Split(s, ".")
	return Descriptor{Base: parts[0], Modifiers: parts[1:]}, nil
}

// String reassembles the descriptor.
func (d Descriptor) String() string {
	if len(d.Modifiers) == 0 {
		return d.Base
	}
	return d.Base + "." + strings.Join(d.Modifiers, ".")
}
