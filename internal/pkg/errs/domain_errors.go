package errs

import "errors"

// Markers for the two failure kinds raised by the reservation usecase.
// Use errors.Is against these, never compare messages.
var (
	// caller input or business rule violation
	ErrBadRequest = errors.New("bad request")

	// referenced identifier does not exist
	ErrNotFound = errors.New("not found")
)
