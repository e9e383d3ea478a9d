// Package embedding provides the embedding capabilities behind semantic
// scoring: a deterministic local hash embedder and a client for an external
// embedding service.
package embedding

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/transcript"
)

// Default hash embedder configuration constants.
const (
	defaultDimension = 256
)

// HashOption applies a configuration option to the HashEmbedder.
type HashOption func(*HashEmbedder)

// WithDimension sets the embedding vector length.
func WithDimension(dim int) HashOption {
	return func(e *HashEmbedder) {
		if dim > 0 {
			e.dimension = dim
		}
	}
}

// HashEmbedder maps text to a fixed-length bag-of-words vector by hashing
// each token into a bucket. It needs no model or network, always produces
// the same vector for the same text, and two texts sharing vocabulary get
// proportionally similar vectors. It is safe for concurrent use.
type HashEmbedder struct {
	dimension int
}

// NewHashEmbedder creates a hash embedder with configuration options.
func NewHashEmbedder(opts ...HashOption) *HashEmbedder {
	e := &HashEmbedder{
		dimension: defaultDimension,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Embed hashes the text's tokens into buckets and L2-normalizes the
// resulting counts. Empty text yields the zero vector.
func (e *HashEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, e.dimension)

	for _, tok := range transcript.Normalize(text).Tokens {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[int(h.Sum32())%e.dimension]++
	}

	var mag float64
	for _, v := range vec {
		mag += v * v
	}
	if mag > 0 {
		mag = math.Sqrt(mag)
		for i := range vec {
			vec[i] /= mag
		}
	}

	return vec, nil
}
