package newsletter

import "errors"

// Repository errors.
var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrEmailExists        = errors.New("email already subscribed")
)
