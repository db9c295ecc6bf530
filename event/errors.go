package event

import "errors"

// ErrMalformedDescriptor is returned for an empty event descriptor string.
var ErrMalformedDescriptor = errors.New("malformed event descriptor")

// ErrForbiddenOption is returned when trigger options contain a target
// field. The target of an event is always the node the trigger was invoked
// on and can never be supplied through options.
var ErrForbiddenOption = errors.New("the target of an event is determined by the node it is triggered on and cannot be set in options")
