// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/lexical"
)

// scoreRequest mirrors the request schema for POST /score. Transcript is a
// pointer so a missing field can be told apart from an empty transcript,
// which is a valid input.
type scoreRequest struct {
	Transcript      *string `json:"transcript"`
	DurationMinutes float64 `json:"duration_minutes"`
}

func (r scoreRequest) validate() error {
	switch {
	case r.Transcript == nil:
		return errors.New("missing transcript")
	case r.DurationMinutes <= 0:
		return errors.New("duration_minutes must be positive")
	}
	return nil
}

// ScoreHandler handles transcript scoring requests.
type ScoreHandler struct {
	deps         Dependencies
	maxBodyBytes int64
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps Dependencies, maxBodyBytes int64) *ScoreHandler {
	return &ScoreHandler{deps: deps, maxBodyBytes: maxBodyBytes}
}

// HandlePostScore handles POST /score requests.
func (h *ScoreHandler) HandlePostScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large",
				fmt.Errorf("transcript exceeds %d bytes", maxErr.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	report, err := h.deps.Score(r.Context(), *req.Transcript, req.DurationMinutes)
	if err != nil {
		if errors.Is(err, lexical.ErrInvalidDuration) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", ErrScoring)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
