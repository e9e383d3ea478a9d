package embedding

import "errors"

var (
	// ErrRemoteEmbed reports a failed call to the external embedding service.
	ErrRemoteEmbed = errors.New("remote embedding failed")
)
