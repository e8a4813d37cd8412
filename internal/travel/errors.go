package travel

import "errors"

var (
	// ErrInvalidID means a string is not a well-formed identifier.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrNotFound means a well-formed identifier matched no record.
	ErrNotFound = errors.New("not found")

	// ErrMissingDestination means an itinerary references a destination
	// that does not exist.
	ErrMissingDestination = errors.New("one or more destinations not found")
)
