// Package record contains the typed result rows shared across the pipeline.
package record

// CompDivision is the top-level competitive bracket.
type CompDivision string

// Known competitive divisions.
const (
	Club    CompDivision = "Club"
	College CompDivision = "College"
)

// RegionUnknown is the sentinel region for missing or unrecognized values.
const RegionUnknown = "Unknown"

// ParseCompDivision maps a raw string onto a known competitive division.
// Returns false for anything outside the fixed vocabulary.
func ParseCompDivision(s string) (CompDivision, bool) {
	switch CompDivision(s) {
	case Club:
		return Club, true
	case College:
		return College, true
	default:
		return "", false
	}
}

// Record is one team's nationals finish for a single year and division.
// Records are produced once per scrape run and never mutated afterwards.
type Record struct {
	Year         int
	CompDivision CompDivision
	Division     string
	Team         string
	Region       string
	Standing     int
	// Spirit is on the unified 0-20 scale. SpiritKnown is false when the
	// source reported no score; Spirit is meaningless in that case.
	Spirit      float64
	SpiritKnown bool
}
