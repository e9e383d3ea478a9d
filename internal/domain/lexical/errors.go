package lexical

import (
	"errors"
)

// Sentinel kinds for lexical metric errors.
var (
	// ErrInvalidDuration marks a non-positive speaking duration. It aborts
	// the whole scoring request because WPM feeds multiple criteria.
	ErrInvalidDuration = errors.New("invalid speaking duration")
)
