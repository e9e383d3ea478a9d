// Package semantic scores a transcript against a criterion's ideal text by
// cosine similarity of their embeddings. The embedding model itself is an
// injected capability; this package only needs "text in, vector out".
package semantic

import (
	"context"
	"fmt"
	"math"
)

// Embedder is the external embedding capability. Implementations must
// return fixed-length vectors; the scorer is agnostic to the dimension and
// to the model behind it.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Cosine returns the cosine similarity of two vectors in [-1,1]. A zero
// magnitude on either side yields 0 rather than dividing by zero.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// ClampUnit clamps v to [0,1]. Negative similarity carries no rubric
// meaning, so it floors at 0 instead of propagating below the scale.
func ClampUnit(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Similarity embeds both texts under the caller's deadline and returns
// their cosine similarity clamped to [0,1]. Any capability failure,
// timeout, or vector mismatch surfaces as ErrEmbeddingUnavailable so the
// caller can substitute its fallback instead of crashing.
func Similarity(ctx context.Context, embedder Embedder, transcriptText, idealText string) (float64, error) {
	if embedder == nil {
		return 0, fmt.Errorf("%w: no embedder configured", ErrEmbeddingUnavailable)
	}
	a, err := embedder.Embed(ctx, transcriptText)
	if err != nil {
		return 0, fmt.Errorf("%w: embed transcript: %v", ErrEmbeddingUnavailable, err)
	}
	b, err := embedder.Embed(ctx, idealText)
	if err != nil {
		return 0, fmt.Errorf("%w: embed ideal text: %v", ErrEmbeddingUnavailable, err)
	}
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("%w: vector dimensions %d vs %d", ErrEmbeddingUnavailable, len(a), len(b))
	}
	return ClampUnit(Cosine(a, b)), nil
}
