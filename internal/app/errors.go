package service

import "errors"

var (
	// ErrNotStarted reports a scoring call before Start.
	ErrNotStarted = errors.New("service not started")
)
