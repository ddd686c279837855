// Package query derives every dashboard view from the loaded dataset.
// All functions are pure: they never mutate their input and an empty
// subset is always a representable result, never an error.
package query

import (
	"sort"

	"github.com/discstats/nationals/internal/domain/record"
)

// RegionAll is the region filter value that disables region filtering.
const RegionAll = "all"

// allRegionsLabel is the synthetic menu entry prepended by ListRegions.
const allRegionsLabel = "All Regions"

// Choice is a menu option for the presentation layer.
type Choice struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Subset filters to exact equality on competitive division and division.
// The region filter is equality unless region is RegionAll.
func Subset(records []record.Record, comp record.CompDivision, division, region string) []record.Record {
	var out []record.Record
	for _, r := range records {
		if r.CompDivision != comp || r.Division != division {
			continue
		}
		if region != RegionAll && r.Region != region {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ListDivisions returns the distinct division values observed for a
// competitive division. Ordering uses the trailing character as the sort
// key, descending, so menu ordering is stable and reproducible.
func ListDivisions(records []record.Record, comp record.CompDivision) []Choice {
	var labels []string
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.CompDivision != comp {
			continue
		}
		if _, ok := seen[r.Division]; ok {
			continue
		}
		seen[r.Division] = struct{}{}
		labels = append(labels, r.Division)
	}
	sortByTrailingChar(labels)
	return choices(labels)
}

// ListRegions returns the distinct regions within one division subset,
// with the synthetic "All Regions" option prepended.
func ListRegions(records []record.Record, comp record.CompDivision, division string) []Choice {
	var regions []string
	seen := make(map[string]struct{})
	for _, r := range Subset(records, comp, division, RegionAll) {
		if _, ok := seen[r.Region]; ok {
			continue
		}
		seen[r.Region] = struct{}{}
		regions = append(regions, r.Region)
	}
	sortByTrailingChar(regions)
	return append([]Choice{{Label: allRegionsLabel, Value: RegionAll}}, choices(regions)...)
}

// sortByTrailingChar orders labels by their last byte, descending. This
// groups the gendered/gender-neutral suffix variants together.
func sortByTrailingChar(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return trailingChar(labels[i]) > trailingChar(labels[j])
	})
}

func trailingChar(s string) byte {
	if s == "" {
		return 0
	}
	return s[len(s)-1]
}

func choices(labels []string) []Choice {
	out := make([]Choice, len(labels))
	for i, l := range labels {
		out[i] = Choice{Label: l, Value: l}
	}
	return out
}
