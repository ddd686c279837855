// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/discstats/nationals/internal/query"
)

// DivisionsDependencies defines the interface for division menu lookups.
type DivisionsDependencies interface {
	Divisions(ctx context.Context, comp string) ([]query.Choice, error)
}

// DivisionsHandler handles division menu requests.
type DivisionsHandler struct {
	deps DivisionsDependencies
}

// NewDivisionsHandler creates a new divisions handler.
func NewDivisionsHandler(deps DivisionsDependencies) *DivisionsHandler {
	return &DivisionsHandler{deps: deps}
}

// HandleGetDivisions handles GET /divisions?comp=Club requests.
func (h *DivisionsHandler) HandleGetDivisions(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_divisions"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f := parseFilters(r)
	choices, err := h.deps.Divisions(r.Context(), f.comp)
	handleView(w, op, choices, err)
}
