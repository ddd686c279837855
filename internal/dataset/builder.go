// Package dataset merges cleaned per-year records into the one canonical
// dataset artifact and reads it back for serving. The merged dataset is a
// batch artifact rebuilt from scratch on each scrape run.
package dataset

import (
	"github.com/discstats/nationals/internal/domain/record"
)

// builder carries build-time policy flags.
type builder struct {
	forwardFillRegions bool
}

// Option applies a configuration option to the build.
type Option func(*builder)

// WithForwardFillRegions rewrites every row of a team to the region of its
// most recent appearance. This is a global, all-or-nothing policy applied
// to the whole dataset in one pass.
func WithForwardFillRegions() Option {
	return func(b *builder) {
		b.forwardFillRegions = true
	}
}

// Build concatenates every cleaned slice into one dataset, preserving
// input order. No deduplication happens here: legitimate ties produce
// duplicate standings by design.
func Build(slices [][]record.Record, opts ...Option) []record.Record {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	var total int
	for _, s := range slices {
		total += len(s)
	}
	out := make([]record.Record, 0, total)
	for _, s := range slices {
		out = append(out, s...)
	}

	if b.forwardFillRegions {
		forwardFillRegions(out)
	}
	return out
}

// groupKey identifies a team within one division of one competitive
// division; region history is tracked per group.
type groupKey struct {
	comp     record.CompDivision
	division string
	team     string
}

// forwardFillRegions rewrites the region of every row in a group to the
// region of its year-maximal row, but only for groups that actually span
// more than one distinct region. Later input order wins a year tie, which
// keeps the pass deterministic.
func forwardFillRegions(records []record.Record) {
	type latest struct {
		year   int
		region string
		mixed  bool
		first  string
	}
	groups := make(map[groupKey]*latest)

	for _, r := range records {
		key := groupKey{comp: r.CompDivision, division: r.Division, team: r.Team}
		g, ok := groups[key]
		if !ok {
			groups[key] = &latest{year: r.Year, region: r.Region, first: r.Region}
			continue
		}
		if r.Region != g.first {
			g.mixed = true
		}
		if r.Year >= g.year {
			g.year = r.Year
			g.region = r.Region
		}
	}

	for i := range records {
		key := groupKey{comp: records[i].CompDivision, division: records[i].Division, team: records[i].Team}
		if g := groups[key]; g.mixed {
			records[i].Region = g.region
		}
	}
}
