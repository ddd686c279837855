// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/discstats/nationals/internal/query"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Menu operations expose the filter choices.
	Divisions(ctx context.Context, comp string) ([]query.Choice, error)
	Regions(ctx context.Context, comp, division string) ([]query.Choice, error)

	// View operations answer queries against the dataset.
	Rankings(ctx context.Context, comp, division, region string, highlight []string) (query.RankingView, error)
	Summary(ctx context.Context, comp, division, region string) (query.SummaryView, error)
	Spirit(ctx context.Context, comp, division, region string, highlight []string) (query.SpiritView, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	divisionsHandler *DivisionsHandler
	regionsHandler   *RegionsHandler
	rankingsHandler  *RankingsHandler
	summaryHandler   *SummaryHandler
	spiritHandler    *SpiritHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		divisionsHandler: NewDivisionsHandler(deps),
		regionsHandler:   NewRegionsHandler(deps),
		rankingsHandler:  NewRankingsHandler(deps),
		summaryHandler:   NewSummaryHandler(deps),
		spiritHandler:    NewSpiritHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/divisions", MetricsMiddleware(s.divisionsHandler.HandleGetDivisions, "divisions"))
	mux.HandleFunc("/regions", MetricsMiddleware(s.regionsHandler.HandleGetRegions, "regions"))
	mux.HandleFunc("/rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/spirit", MetricsMiddleware(s.spiritHandler.HandleGetSpirit, "spirit"))
}

// filters are the query parameters shared by the view endpoints.
type filters struct {
	comp     string
	division string
	region   string
	teams    []string
}

// parseFilters extracts the common filter parameters. The region defaults
// to the all-regions value; highlight teams come from repeated team
// parameters, each of which may itself be comma-separated.
func parseFilters(r *http.Request) filters {
	q := r.URL.Query()
	f := filters{
		comp:     q.Get("comp"),
		division: q.Get("division"),
		region:   q.Get("region"),
	}
	if f.region == "" {
		f.region = query.RegionAll
	}
	for _, raw := range q["team"] {
		for _, team := range strings.Split(raw, ",") {
			if team = strings.TrimSpace(team); team != "" {
				f.teams = append(f.teams, team)
			}
		}
	}
	return f
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isBadInput allows the API to translate upstream validation errors to 400.
// This stays generic to avoid tight coupling with specific packages.
func isBadInput(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrBadRequest) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unknown competitive division")
}

// handleView dispatches an error from a view dependency to the right
// status code.
func handleView(w http.ResponseWriter, op string, v any, err error) {
	switch {
	case isBadInput(err):
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	default:
		writeJSON(w, http.StatusOK, v)
	}
}
