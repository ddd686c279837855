// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/discstats/nationals/internal/query"
)

// RegionsDependencies defines the interface for region menu lookups.
type RegionsDependencies interface {
	Regions(ctx context.Context, comp, division string) ([]query.Choice, error)
}

// RegionsHandler handles region menu requests.
type RegionsHandler struct {
	deps RegionsDependencies
}

// NewRegionsHandler creates a new regions handler.
func NewRegionsHandler(deps RegionsDependencies) *RegionsHandler {
	return &RegionsHandler{deps: deps}
}

// HandleGetRegions handles GET /regions?comp=Club&division=MENS requests.
func (h *RegionsHandler) HandleGetRegions(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_regions"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f := parseFilters(r)
	if f.division == "" {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, ErrBadRequest))
		return
	}
	choices, err := h.deps.Regions(r.Context(), f.comp, f.division)
	handleView(w, op, choices, err)
}
