package normalize

// Correction tables for spellings observed in the historical archive pages.
// These are the union of the rules applied by the various scrape script
// revisions; entries flagged for data-owner review are marked.

// teamFixes maps known misspellings to canonical team names. Club keys are
// uppercase because Club names are case-normalized before lookup; College
// keys keep their source casing.
var teamFixes = map[string]string{
	// Club
	"BOHDI":        "BODHI",
	"SHAME":        "SHAME.",
	"JOHNY BRAVO":  "JOHNNY BRAVO",
	"DOUBLE WIDE":  "DOUBLEWIDE",
	"BRUTESQUAD":   "BRUTE SQUAD",
	"SOCK EYE":     "SOCKEYE",
	"CHAIN LIGHTN": "CHAIN LIGHTNING",
	// only present in the latest scrape script revision; kept per the
	// union-of-rules policy, pending data-owner review
	"REVOLUCION": "REVOLUCIÓN",
	// College
	"UC Santa-Barbara":  "UC Santa Barbara",
	"Carleton College":  "Carleton",
	"N.C. State":        "NC State",
	"Wisconsin-Madison": "Wisconsin",
}

// regionFixes maps known region misspellings and renames to canonical
// present-day names. Era-qualified labels (e.g. "West (pre-1988)") are
// deliberately not collapsed so pre-reorganization rows stay queryable.
var regionFixes = map[string]string{
	"Sothwest":        "Southwest",
	"Souhtwest":       "Southwest",
	"Nothwest":        "Northwest",
	"Norhteast":       "Northeast",
	"Mid Atlantic":    "Mid-Atlantic",
	"Middle Atlantic": "Mid-Atlantic",
	"Great Lake":      "Great Lakes",
	"So Central":      "South Central",
	"No Central":      "North Central",
	"Cental":          "Central",
}
