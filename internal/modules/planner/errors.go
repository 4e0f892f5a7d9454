package planner

import "errors"

// ErrNoActiveDraft is returned when an operation needs an active draft and
// the user has none. Callers are expected to prompt for a new draft rather
// than treat this as a failure.
var ErrNoActiveDraft = errors.New("no active draft event")
