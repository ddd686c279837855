// Package spirit converts raw spirit-score strings to the unified 0-20
// scale used across the whole dataset.
package spirit

import (
	"strconv"
	"strings"
)

// scaleChangeYear is the last season scored on the legacy 1-5 scale.
const scaleChangeYear = 2013

// legacy scale bounds used for the linear rescale.
const (
	legacyMin = 1.0
	legacyMax = 5.0
	scaleMax  = 20.0
)

// Parse returns the spirit score on the unified scale and whether a score
// was present. Footnote asterisks and whitespace are stripped and comma
// decimal separators normalized before parsing; anything unparsable is
// reported as missing, never zero.
func Parse(raw string, year int) (float64, bool) {
	s := strings.ReplaceAll(raw, "*", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if year <= scaleChangeYear {
		v = (v - legacyMin) * scaleMax / (legacyMax - legacyMin)
	}
	return v, true
}
