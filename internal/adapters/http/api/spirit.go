// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/discstats/nationals/internal/query"
)

// SpiritDependencies defines the interface for the spirit correlation view.
type SpiritDependencies interface {
	Spirit(ctx context.Context, comp, division, region string, highlight []string) (query.SpiritView, error)
}

// SpiritHandler handles spirit-versus-placement requests.
type SpiritHandler struct {
	deps SpiritDependencies
}

// NewSpiritHandler creates a new spirit handler.
func NewSpiritHandler(deps SpiritDependencies) *SpiritHandler {
	return &SpiritHandler{deps: deps}
}

// HandleGetSpirit handles GET /spirit?comp=Club&division=MENS&region=all&team=FURY requests.
func (h *SpiritHandler) HandleGetSpirit(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_spirit"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f := parseFilters(r)
	if f.division == "" {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, ErrBadRequest))
		return
	}
	view, err := h.deps.Spirit(r.Context(), f.comp, f.division, f.region, f.teams)
	handleView(w, op, view, err)
}
