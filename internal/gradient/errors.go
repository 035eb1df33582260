package gradient

import "errors"

var (
	// ErrInvalidOperation is returned when a delete would leave fewer than MinStops stops
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrHandleNotFound means a row handle no longer maps to a stop.
	// Handles are only issued by the list, so this is an invariant violation.
	ErrHandleNotFound = errors.New("row handle not found")

	// ErrInvalidSyntax is returned by ParseSyntax for unreadable gradient strings
	ErrInvalidSyntax = errors.New("invalid gradient syntax")
)
