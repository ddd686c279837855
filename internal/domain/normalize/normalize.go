// Package normalize canonicalizes raw team, region, and division strings
// scraped from the archive pages. Correction tables are immutable package
// data owned by a Normalizer so the rules stay pure and testable.
package normalize

import (
	"strings"
	"unicode"

	"github.com/discstats/nationals/internal/domain/record"
)

// Normalizer applies the canonicalization rules. The zero value is not
// usable; construct with New.
type Normalizer struct {
	teamFixes   map[string]string
	regionFixes map[string]string
}

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithTeamFixes merges extra team corrections over the built-in table.
func WithTeamFixes(fixes map[string]string) Option {
	return func(n *Normalizer) {
		for from, to := range fixes {
			n.teamFixes[from] = to
		}
	}
}

// WithRegionFixes merges extra region corrections over the built-in table.
func WithRegionFixes(fixes map[string]string) Option {
	return func(n *Normalizer) {
		for from, to := range fixes {
			n.regionFixes[from] = to
		}
	}
}

// New creates a Normalizer seeded with the built-in correction tables.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		teamFixes:   make(map[string]string, len(teamFixes)),
		regionFixes: make(map[string]string, len(regionFixes)),
	}
	for from, to := range teamFixes {
		n.teamFixes[from] = to
	}
	for from, to := range regionFixes {
		n.regionFixes[from] = to
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Team canonicalizes a raw team name. Club names are uppercased; all names
// are stripped of non-printable characters and trimmed before the known
// misspelling table is consulted. Names not in the table pass through.
func (n *Normalizer) Team(raw string, comp record.CompDivision) string {
	name := strings.TrimSpace(stripNonPrintable(raw))
	if comp == record.Club {
		name = strings.ToUpper(name)
	}
	if fixed, ok := n.teamFixes[name]; ok {
		return fixed
	}
	return name
}

// Region canonicalizes a raw region name. Empty input maps to the Unknown
// sentinel; known misspellings are corrected; anything else passes through.
func (n *Normalizer) Region(raw string) string {
	region := strings.TrimSpace(stripNonPrintable(raw))
	if region == "" {
		return record.RegionUnknown
	}
	if fixed, ok := n.regionFixes[region]; ok {
		return fixed
	}
	return region
}

// stripNonPrintable drops control characters and other non-printable runes
// that show up as encoding artifacts in the older archive pages.
func stripNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}
