package semantic

import "errors"

var (
	// ErrEmbeddingUnavailable reports that similarity could not be computed
	// because the embedding capability failed or returned unusable vectors.
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")
)
