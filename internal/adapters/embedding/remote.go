package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/pkg/metrics"
)

// Default remote embedder configuration constants.
const (
	defaultClientTimeout = 10 * time.Second
	embedPath            = "/embed"
)

// RemoteOption applies a configuration option to the RemoteEmbedder.
type RemoteOption func(*RemoteEmbedder)

// WithHTTPClient sets the HTTP client used for embedding calls.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(e *RemoteEmbedder) {
		if c != nil {
			e.client = c
		}
	}
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Vector []float64 `json:"vector"`
}

// RemoteEmbedder calls an external embedding service over HTTP. Per-call
// deadlines come from the caller's context; the client timeout is only a
// backstop.
type RemoteEmbedder struct {
	baseURL string
	client  *http.Client
}

// NewRemoteEmbedder creates a client for the embedding service at baseURL.
func NewRemoteEmbedder(baseURL string, opts ...RemoteOption) *RemoteEmbedder {
	e := &RemoteEmbedder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultClientTimeout},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Embed posts the text to the service and returns its vector.
func (e *RemoteEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	metrics.RecordEmbeddingRequest()
	start := time.Now()
	defer func() {
		metrics.RecordEmbeddingLatency(float64(time.Since(start).Milliseconds()))
	}()

	payload, err := json.Marshal(embedRequest{Text: text})
	if err != nil {
		return nil, errors.Wrap(err, "marshal embed request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+embedPath, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build embed request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		metrics.RecordEmbeddingError("transport")
		return nil, errors.Wrap(err, "call embedding service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordEmbeddingError("status")
		return nil, errors.Wrapf(ErrRemoteEmbed, "unexpected status %d", resp.StatusCode)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		metrics.RecordEmbeddingError("decode")
		return nil, errors.Wrap(err, "decode embed response")
	}
	if len(out.Vector) == 0 {
		metrics.RecordEmbeddingError("empty_vector")
		return nil, errors.Wrap(ErrRemoteEmbed, "empty vector in response")
	}

	return out.Vector, nil
}
