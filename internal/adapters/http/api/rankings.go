// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/discstats/nationals/internal/query"
)

// RankingsDependencies defines the interface for the ranking view.
type RankingsDependencies interface {
	Rankings(ctx context.Context, comp, division, region string, highlight []string) (query.RankingView, error)
}

// RankingsHandler handles year-by-year placement requests.
type RankingsHandler struct {
	deps RankingsDependencies
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps RankingsDependencies) *RankingsHandler {
	return &RankingsHandler{deps: deps}
}

// HandleGetRankings handles GET /rankings?comp=Club&division=MENS&region=all&team=SOCKEYE requests.
func (h *RankingsHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_rankings"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f := parseFilters(r)
	if f.division == "" {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, ErrBadRequest))
		return
	}
	view, err := h.deps.Rankings(r.Context(), f.comp, f.division, f.region, f.teams)
	handleView(w, op, view, err)
}
