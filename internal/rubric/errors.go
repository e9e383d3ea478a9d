package rubric

import (
	"errors"
)

// Sentinel kinds for rubric errors.
var (
	// ErrMisconfigured marks a rubric that violates a loading invariant.
	// It is fatal: the process must not start scoring with such a rubric.
	ErrMisconfigured = errors.New("rubric misconfigured")
)
