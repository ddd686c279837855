// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/discstats/nationals/internal/query"
)

// SummaryDependencies defines the interface for the team summary view.
type SummaryDependencies interface {
	Summary(ctx context.Context, comp, division, region string) (query.SummaryView, error)
}

// SummaryHandler handles per-team summary requests.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleGetSummary handles GET /summary?comp=Club&division=MENS&region=all requests.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f := parseFilters(r)
	if f.division == "" {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, ErrBadRequest))
		return
	}
	view, err := h.deps.Summary(r.Context(), f.comp, f.division, f.region)
	handleView(w, op, view, err)
}
