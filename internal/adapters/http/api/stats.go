// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/model"
)

// StatsProvider supplies the service counter snapshot served on /stats.
type StatsProvider interface {
	GetStats() model.ServiceStats
}

// StatsHandler serves the service counter snapshot.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.statsProvider.GetStats())
}
