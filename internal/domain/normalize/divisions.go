package normalize

import (
	"strings"

	"github.com/discstats/nationals/internal/domain/record"
)

// collegeSplitYear is the season the college bracket reorganized into
// D-I/D-III tiers. Pre-split labels keep an era suffix so they never
// collide with the modern labels.
const collegeSplitYear = 2010

// Canonical Club division labels. The historical "Open" bracket collapses
// into MENS; headings that match no marker are dropped, not guessed.
const (
	ClubMens    = "MENS"
	ClubWomens  = "WOMENS"
	ClubMixed   = "MIXED"
	ClubMasters = "MASTERS"
)

// clubMarkers is an ordered substring-marker list. Order matters: "women"
// must be tested before "men" since it contains it.
var clubMarkers = []struct {
	marker string
	label  string
}{
	{"mixed", ClubMixed},
	{"co-ed", ClubMixed},
	{"women", ClubWomens},
	{"master", ClubMasters},
	{"open", ClubMens},
	{"men", ClubMens},
}

// collegeTiers and collegeGenders combine into the post-split labels, e.g.
// "D-I Men's". "D-III" markers are tested before "D-I" for the same
// containment reason as above.
var collegeTiers = []struct {
	markers []string
	label   string
}{
	{[]string{"d-iii", "division iii"}, "D-III"},
	{[]string{"d-i", "division i"}, "D-I"},
}

var collegeGenders = []struct {
	markers []string
	label   string
}{
	{[]string{"women"}, "Women's"},
	{[]string{"open", "men"}, "Men's"},
}

// collegePreSplit holds the whole-phrase matchers for the pre-split era.
// The era suffix is the deliberate dated variant: pre-split "Open" is not
// merged into any modern label.
var collegePreSplit = map[string]string{
	"open":             "Men's (pre-2010)",
	"open division":    "Men's (pre-2010)",
	"college open":     "Men's (pre-2010)",
	"women's":          "Women's (pre-2010)",
	"womens":           "Women's (pre-2010)",
	"women's division": "Women's (pre-2010)",
}

// divisionParser maps a page heading to a canonical division label.
// Returns false when the heading matches nothing; callers drop unmatched
// headings rather than guess.
type divisionParser func(heading string) (string, bool)

// Divisions maps raw result-table headings to canonical division labels
// for one year of one competitive division. Parsers are tried as an
// ordered strategy list: for College the post-split tier+gender scheme is
// tried across all headings first and the pre-split whole-phrase scheme is
// used only when the first scheme matched nothing, so the two schemes are
// never mixed within a single year.
func (n *Normalizer) Divisions(headings []string, comp record.CompDivision, year int) []string {
	for _, parse := range n.divisionParsers(comp, year) {
		var labels []string
		for _, h := range headings {
			if label, ok := parse(h); ok {
				labels = append(labels, label)
			}
		}
		if len(labels) > 0 {
			return labels
		}
	}
	return nil
}

func (n *Normalizer) divisionParsers(comp record.CompDivision, year int) []divisionParser {
	if comp == record.College {
		return []divisionParser{parseCollegePostSplit, parseCollegePreSplit}
	}
	return []divisionParser{parseClub}
}

func parseClub(heading string) (string, bool) {
	h := strings.ToLower(heading)
	for _, m := range clubMarkers {
		if strings.Contains(h, m.marker) {
			return m.label, true
		}
	}
	return "", false
}

// parseCollegePostSplit requires both a tier marker and a gender marker in
// the heading.
func parseCollegePostSplit(heading string) (string, bool) {
	h := strings.ToLower(heading)
	tier := ""
	for _, t := range collegeTiers {
		if containsAny(h, t.markers) {
			tier = t.label
			break
		}
	}
	if tier == "" {
		return "", false
	}
	for _, g := range collegeGenders {
		if containsAny(h, g.markers) {
			return tier + " " + g.label, true
		}
	}
	return "", false
}

func parseCollegePreSplit(heading string) (string, bool) {
	label, ok := collegePreSplit[strings.ToLower(strings.TrimSpace(heading))]
	return label, ok
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
